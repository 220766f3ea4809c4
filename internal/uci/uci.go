// Package uci implements the Universal Chess Interface line protocol
// on standard input/output.
package uci

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/AKAA-2025/Chess-AI-Engine/internal/board"
	"github.com/AKAA-2025/Chess-AI-Engine/internal/diagram"
	"github.com/AKAA-2025/Chess-AI-Engine/internal/engine"
	"github.com/AKAA-2025/Chess-AI-Engine/internal/storage"
)

// Engine identity reported to the GUI.
const (
	engineName   = "Chess-AI-Engine 1.0"
	engineAuthor = "AKAA"
)

// UCI is the protocol handler. The search runs on its own goroutine so
// the dispatcher keeps reading stdin; searchDone is the join point the
// dispatcher waits on before starting another search or quitting.
type UCI struct {
	engine   *engine.Engine
	position *board.Position
	store    *storage.Store
	options  *storage.Options

	searching  bool
	searchDone chan struct{}
}

// New creates a protocol handler. The store may be nil; options then
// live only for the session.
func New(eng *engine.Engine, store *storage.Store) *UCI {
	opts, err := store.LoadOptions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "info string Could not load options: %v\n", err)
		opts = storage.DefaultOptions()
	}

	return &UCI{
		engine:   eng,
		position: board.NewPosition(),
		store:    store,
		options:  opts,
	}
}

// Run reads commands line by line until EOF or "quit". Malformed
// commands are ignored and the next line is read.
func (u *UCI) Run() {
	scanner := bufio.NewScanner(os.Stdin)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "uci":
			u.handleUCI()
		case "isready":
			fmt.Println("readyok")
		case "ucinewgame":
			u.handleNewGame()
		case "position":
			u.handlePosition(args)
		case "go":
			u.handleGo(args)
		case "stop":
			u.handleStop()
		case "setoption":
			u.handleSetOption(args)
		case "quit":
			u.handleQuit()

		// Debug commands
		case "d":
			fmt.Println(u.position.String())
		case "perft":
			u.handlePerft(args)
		case "export":
			u.handleExport(args)
		}
	}
}

// handleUCI reports identity and the option surface.
func (u *UCI) handleUCI() {
	fmt.Printf("id name %s\n", engineName)
	fmt.Printf("id author %s\n", engineAuthor)
	fmt.Println()
	fmt.Println("option name Hash type spin default 128 min 1 max 16384")
	fmt.Println("option name Threads type spin default 1 min 1 max 256")
	fmt.Println("option name OwnBook type check default false")
	fmt.Println("option name Contempt type spin default 0 min -100 max 100")
	fmt.Println("uciok")
}

// handleNewGame drops all per-game state.
func (u *UCI) handleNewGame() {
	u.waitForSearch()
	u.position = board.NewPosition()
}

// handlePosition resets the position and replays the given moves.
// Replaying from scratch leaves only this command's moves on the undo
// stack; handleGo searches a copy whose undo stack is empty.
func (u *UCI) handlePosition(args []string) {
	if len(args) == 0 {
		return
	}

	var moveStart int

	switch args[0] {
	case "startpos":
		u.position = board.NewPosition()
		moveStart = 1
	case "fen":
		fenEnd := len(args)
		for i, arg := range args[1:] {
			if arg == "moves" {
				fenEnd = i + 1
				break
			}
		}

		pos, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(os.Stderr, "info string Invalid FEN: %v\n", err)
			return
		}
		u.position = pos
		moveStart = fenEnd
	default:
		return
	}

	if moveStart < len(args) && args[moveStart] == "moves" {
		for _, moveStr := range args[moveStart+1:] {
			m, err := board.ParseMove(moveStr, u.position)
			if err != nil || !u.position.GenerateLegalMoves().Contains(m) {
				fmt.Fprintf(os.Stderr, "info string Invalid move: %s\n", moveStr)
				break
			}
			u.position.MakeMove(m)
		}
	}
}

// handleGo parses the limits and starts the search worker.
func (u *UCI) handleGo(args []string) {
	u.waitForSearch()

	limits := parseGoLimits(args)

	u.engine.OnInfo = func(info engine.SearchInfo) {
		u.sendInfo(info)
	}

	pos := u.position.Copy()
	u.searching = true
	u.searchDone = make(chan struct{})

	go func() {
		defer close(u.searchDone)

		start := time.Now()
		result := u.engine.Search(pos, limits)
		u.searching = false

		if result.BestMove == board.NoMove {
			fmt.Println("bestmove (none)")
			return
		}
		fmt.Printf("bestmove %s\n", result.BestMove.String())

		stats := u.engine.Stats()
		if err := u.store.RecordSearch(stats.Nodes, time.Since(start)); err != nil {
			fmt.Fprintf(os.Stderr, "info string Could not record search stats: %v\n", err)
		}
	}()
}

// parseGoLimits reads the "go" arguments.
func parseGoLimits(args []string) engine.Limits {
	limits := engine.Limits{}

	intArg := func(i int) int {
		if i+1 < len(args) {
			n, _ := strconv.Atoi(args[i+1])
			return n
		}
		return 0
	}
	msArg := func(i int) time.Duration {
		return time.Duration(intArg(i)) * time.Millisecond
	}

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "depth":
			limits.Depth = intArg(i)
			i++
		case "nodes":
			if i+1 < len(args) {
				limits.Nodes, _ = strconv.ParseUint(args[i+1], 10, 64)
				i++
			}
		case "movetime":
			limits.MoveTime = msArg(i)
			i++
		case "infinite":
			limits.Infinite = true
		case "wtime":
			limits.Time[board.White] = msArg(i)
			i++
		case "btime":
			limits.Time[board.Black] = msArg(i)
			i++
		case "winc":
			limits.Inc[board.White] = msArg(i)
			i++
		case "binc":
			limits.Inc[board.Black] = msArg(i)
			i++
		case "movestogo":
			limits.MovesToGo = intArg(i)
			i++
		}
	}

	return limits
}

// sendInfo emits one iteration report.
func (u *UCI) sendInfo(info engine.SearchInfo) {
	var sb strings.Builder

	fmt.Fprintf(&sb, "info depth %d seldepth %d", info.Depth, info.SelDepth)

	if info.MateFound {
		fmt.Fprintf(&sb, " score mate %d", info.Mate)
	} else {
		fmt.Fprintf(&sb, " score cp %d", info.Score)
	}

	fmt.Fprintf(&sb, " nodes %d", info.Nodes)

	ms := info.Time.Milliseconds()
	nps := int64(0)
	if ms > 0 {
		nps = int64(info.Nodes) * 1000 / ms
	}
	fmt.Fprintf(&sb, " nps %d time %d", nps, ms)

	if len(info.PV) > 0 {
		sb.WriteString(" pv")
		for _, m := range info.PV {
			sb.WriteByte(' ')
			sb.WriteString(m.String())
		}
	}

	fmt.Println(sb.String())
}

// handleStop cancels the search and joins the worker.
func (u *UCI) handleStop() {
	if u.searching {
		u.engine.Stop()
	}
	u.waitForSearch()
}

// waitForSearch joins the previous search worker, if any.
func (u *UCI) waitForSearch() {
	if u.searchDone != nil {
		u.engine.Stop()
		<-u.searchDone
		u.searchDone = nil
	}
}

// handleQuit exits the process with status 0.
func (u *UCI) handleQuit() {
	u.handleStop()
	if err := u.store.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "info string Could not close storage: %v\n", err)
	}
	os.Exit(0)
}

// handleSetOption validates and stores a named option. All four are
// reserved by the search core; invalid values keep the previous one.
func (u *UCI) handleSetOption(args []string) {
	name, value := parseNameValue(args)

	switch strings.ToLower(name) {
	case "hash":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 16384 {
			fmt.Fprintf(os.Stderr, "info string Invalid Hash value: %s\n", value)
			return
		}
		u.options.Hash = n
	case "threads":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > 256 {
			fmt.Fprintf(os.Stderr, "info string Invalid Threads value: %s\n", value)
			return
		}
		u.options.Threads = n
	case "ownbook":
		switch strings.ToLower(value) {
		case "true":
			u.options.OwnBook = true
		case "false":
			u.options.OwnBook = false
		default:
			fmt.Fprintf(os.Stderr, "info string Invalid OwnBook value: %s\n", value)
			return
		}
	case "contempt":
		n, err := strconv.Atoi(value)
		if err != nil || n < -100 || n > 100 {
			fmt.Fprintf(os.Stderr, "info string Invalid Contempt value: %s\n", value)
			return
		}
		u.options.Contempt = n
	default:
		fmt.Fprintf(os.Stderr, "info string Unknown option: %s\n", name)
		return
	}

	if err := u.store.SaveOptions(u.options); err != nil {
		fmt.Fprintf(os.Stderr, "info string Could not save options: %v\n", err)
	}
}

// parseNameValue splits "name <N...> value <V...>"; both sides may
// span multiple words.
func parseNameValue(args []string) (name, value string) {
	var nameParts, valueParts []string
	target := &nameParts

	for _, arg := range args {
		switch arg {
		case "name":
			target = &nameParts
		case "value":
			target = &valueParts
		default:
			*target = append(*target, arg)
		}
	}

	return strings.Join(nameParts, " "), strings.Join(valueParts, " ")
}

// handlePerft runs a parallel perft from the current position.
func (u *UCI) handlePerft(args []string) {
	depth := 5
	if len(args) > 0 {
		if n, err := strconv.Atoi(args[0]); err == nil && n > 0 {
			depth = n
		}
	}

	start := time.Now()
	nodes := board.PerftParallel(u.position, depth)
	elapsed := time.Since(start)

	fmt.Printf("Nodes: %d\n", nodes)
	fmt.Printf("Time: %v\n", elapsed)
	if elapsed > 0 {
		fmt.Printf("NPS: %.0f\n", float64(nodes)/elapsed.Seconds())
	}
}

// handleExport writes the current position as an SVG diagram.
func (u *UCI) handleExport(args []string) {
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "info string export needs a file path")
		return
	}

	if err := diagram.WriteFile(args[0], u.position); err != nil {
		fmt.Fprintf(os.Stderr, "info string Could not export diagram: %v\n", err)
		return
	}
	fmt.Fprintf(os.Stderr, "info string Diagram written to %s\n", args[0])
}
