// Command play runs the shop simulation as a local interactive session,
// driving the engine directly without the HTTP server.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"teashop/internal/catalog"
	"teashop/internal/config"
	"teashop/internal/rng"
	"teashop/internal/sim"
	"teashop/internal/telemetry"
)

func main() {
	var (
		seed       int64
		difficulty string
	)

	root := &cobra.Command{
		Use:          "play",
		Short:        "Run a tea shop from an empty lease to a 52-week verdict",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			bal, err := config.LoadBalance(difficulty, "")
			if err != nil {
				return err
			}
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			engine := sim.NewEngine(catalog.Default(), bal, rng.New(seed), slog.New(slog.NewTextHandler(io.Discard, nil)))
			engine.Telemetry = telemetry.NewMemoryRepository()
			return runSession(engine)
		},
	}
	root.Flags().Int64Var(&seed, "seed", 0, "random seed (0 picks one)")
	root.Flags().StringVar(&difficulty, "difficulty", "default", "default, casual or hard")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func runSession(engine *sim.Engine) error {
	st := engine.NewGame()
	reader := bufio.NewReader(os.Stdin)

	printWelcome()
	printStatus(engine, st)

	for {
		accent.Print("> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if handleReadCommand(engine, st, cmd, args) {
			continue
		}

		action, ok, err := parseAction(cmd, args)
		if err != nil {
			printWarnf("%v", err)
			continue
		}
		if !ok {
			printWarnf("unknown command %q, try `help`", cmd)
			continue
		}

		next, changed, err := engine.Dispatch(st, action)
		if err != nil {
			printDangerf("%v", err)
			continue
		}
		if !changed {
			printWarnf("nothing happened; the action's preconditions are not met")
			continue
		}
		st = next

		if action.Type == sim.ActionNextWeek {
			printWeek(engine, st)
		}
		if st.PendingEvent != nil {
			printEvent(engine, st)
		}
		if st.Phase == sim.PhaseEnded {
			printResult(engine, st)
		}
	}
}

// handleReadCommand covers the commands that only look at state.
func handleReadCommand(engine *sim.Engine, st sim.GameState, cmd string, args []string) bool {
	switch cmd {
	case "help":
		printHelp()
	case "status":
		printStatus(engine, st)
	case "stats":
		printStats(engine, st)
	case "menu":
		printCatalog(engine)
	case "staff":
		printStaff(st)
	case "alerts":
		printAlerts(engine.ComputeHealthAlerts(st))
	case "event":
		if st.PendingEvent == nil {
			printWarnf("no event pending")
		} else {
			printEvent(engine, st)
		}
	case "result":
		printResult(engine, st)
	default:
		return false
	}
	return true
}

// parseAction maps a console command onto an engine action. The second return
// is false for commands this parser does not know.
func parseAction(cmd string, args []string) (sim.Action, bool, error) {
	need := func(n int) error {
		if len(args) < n {
			return fmt.Errorf("%s needs %d argument(s)", cmd, n)
		}
		return nil
	}
	num := func(s string) (float64, error) {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", s)
		}
		return v, nil
	}

	switch cmd {
	case "brand":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSelectBrand, BrandID: args[0]}, true, nil
	case "location":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSelectLocation, LocationID: args[0]}, true, nil
	case "address":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSelectAddress, AddressID: args[0]}, true, nil
	case "area":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		v, err := num(args[0])
		if err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSetStoreArea, Area: v}, true, nil
	case "deco":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSelectDecoration, DecorationID: args[0]}, true, nil
	case "product":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionToggleProduct, ProductID: args[0]}, true, nil
	case "open":
		return sim.Action{Type: sim.ActionOpenStore}, true, nil
	case "price":
		if err := need(2); err != nil {
			return sim.Action{}, true, err
		}
		v, err := num(args[1])
		if err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSetPrice, ProductID: args[0], Price: v}, true, nil
	case "stock":
		if err := need(2); err != nil {
			return sim.Action{}, true, err
		}
		v, err := num(args[1])
		if err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSetInventory, ProductID: args[0], Inventory: int(v)}, true, nil
	case "strategy":
		if err := need(2); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSetRestockStrategy, ProductID: args[0], Strategy: sim.RestockStrategy(args[1])}, true, nil
	case "hire":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionHireStaff, StaffTypeID: args[0]}, true, nil
	case "fire":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionFireStaff, StaffID: args[0]}, true, nil
	case "task":
		if err := need(2); err != nil {
			return sim.Action{}, true, err
		}
		a := sim.Action{Type: sim.ActionSetStaffTask, StaffID: args[0], Task: catalog.StaffTask(args[1])}
		if len(args) > 2 {
			a.ProductID = args[2]
		}
		return a, true, nil
	case "hours":
		if err := need(3); err != nil {
			return sim.Action{}, true, err
		}
		days, err := num(args[1])
		if err != nil {
			return sim.Action{}, true, err
		}
		hours, err := num(args[2])
		if err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionSetStaffHours, StaffID: args[0], WorkDays: int(days), WorkHours: int(hours)}, true, nil
	case "salary":
		if err := need(2); err != nil {
			return sim.Action{}, true, err
		}
		v, err := num(args[1])
		if err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionAdjustSalary, StaffID: args[0], Salary: v}, true, nil
	case "morale":
		return sim.Action{Type: sim.ActionBoostMorale}, true, nil
	case "boss":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionBossWeekly, Focus: args[0]}, true, nil
	case "priority":
		a := sim.Action{Type: sim.ActionSetSupplyPriority}
		if len(args) > 0 {
			a.ProductID = args[0]
		}
		return a, true, nil
	case "market":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionStartMarketing, ActivityID: args[0]}, true, nil
	case "stopmarket":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionStopMarketing, ActivityID: args[0]}, true, nil
	case "join":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionJoinPlatform, PlatformID: args[0]}, true, nil
	case "leave":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionLeavePlatform, PlatformID: args[0]}, true, nil
	case "respond":
		if err := need(1); err != nil {
			return sim.Action{}, true, err
		}
		return sim.Action{Type: sim.ActionRespondEvent, OptionID: args[0]}, true, nil
	case "advisor":
		return sim.Action{Type: sim.ActionConsultAdvisor}, true, nil
	case "next":
		return sim.Action{Type: sim.ActionNextWeek}, true, nil
	case "restart":
		return sim.Action{Type: sim.ActionRestart}, true, nil
	default:
		return sim.Action{}, false, nil
	}
}
