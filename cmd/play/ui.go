package main

import (
	"github.com/fatih/color"

	"teashop/internal/sim"
)

var (
	accent  = color.New(color.FgCyan, color.Bold)
	success = color.New(color.FgGreen)
	warn    = color.New(color.FgYellow)
	danger  = color.New(color.FgRed, color.Bold)
	neutral = color.New(color.FgWhite)
)

func printWarnf(format string, args ...any) {
	warn.Printf(format+"\n", args...)
}

func printDangerf(format string, args ...any) {
	danger.Printf(format+"\n", args...)
}

func printWelcome() {
	accent.Println("teashop")
	neutral.Println("Set up a shop, open it, and survive the year. Type `help` for commands.")
}

func printHelp() {
	accent.Println("setup")
	neutral.Println("  brand <id>    location <id>   address <id>   area <sqm>")
	neutral.Println("  deco <id>     product <id>    open")
	accent.Println("running the week")
	neutral.Println("  price <id> <v>        stock <id> <n>       strategy <id> <demand|aggressive|fixed>")
	neutral.Println("  hire <type>           fire <id>            task <id> <task> [product]")
	neutral.Println("  hours <id> <d> <h>    salary <id> <v>      morale    boss <focus>")
	neutral.Println("  priority [product]    market <id>          stopmarket <id>")
	neutral.Println("  join <id>             leave <id>           advisor")
	neutral.Println("  next                  respond <option>")
	accent.Println("reading the board")
	neutral.Println("  status  stats  menu  staff  alerts  event  result")
	accent.Println("meta")
	neutral.Println("  restart  quit")
}

func printStatus(e *sim.Engine, st sim.GameState) {
	accent.Printf("week %d/%d  phase %s\n", st.CurrentWeek, st.TotalWeeks, st.Phase)
	neutral.Printf("cash %.0f  reputation %.1f  exposure %.1f  streak %d\n",
		st.Cash, st.Reputation, st.Exposure, st.ConsecutiveProfits)

	if st.Phase == sim.PhaseSetup {
		co := e.ComputeCanOpen(st)
		if co.CanOpen {
			success.Printf("ready to open, investment %.0f\n", co.Investment)
		} else {
			for _, reason := range co.Reasons {
				warn.Printf("blocked: %s\n", reason)
			}
		}
		return
	}

	for _, p := range st.Products {
		name := p.ProductID
		if def, ok := e.Catalog.Product(p.ProductID); ok {
			name = def.Name
		}
		neutral.Printf("  %-22s price %.1f  stock %d  (%s)\n", name, p.Price, p.Inventory, p.Strategy)
	}
	if st.Summary != nil {
		printSummary(st.Summary)
	}
}

func printSummary(sum *sim.WeekSummary) {
	line := success
	if sum.Profit < 0 {
		line = danger
	}
	line.Printf("week %d: revenue %.0f, costs %.0f, profit %.0f\n",
		sum.Week, sum.Revenue, sum.FixedCost+sum.VariableCost, sum.Profit)
	neutral.Printf("  sold %d units, %d stockouts, %d wasted\n", sum.UnitsSold, sum.Stockouts, sum.WasteUnits)
	if sum.NewShops > 0 || sum.ClosedShops > 0 {
		neutral.Printf("  neighbourhood: %d opened, %d closed\n", sum.NewShops, sum.ClosedShops)
	}
	if sum.EventNote != "" {
		warn.Printf("  %s\n", sum.EventNote)
	}
	printAlerts(sum.Alerts)
}

func printWeek(e *sim.Engine, st sim.GameState) {
	if st.Summary != nil {
		printSummary(st.Summary)
	}
}

func printStats(e *sim.Engine, st sim.GameState) {
	cs := e.ComputeCurrentStats(st)
	accent.Printf("week %d  cognition L%d (%d exp to next)\n", cs.Week, cs.CognitionLevel, cs.CognitionExpToNext)
	neutral.Printf("cash %.0f  reputation %.1f  exposure %.1f\n", cs.Cash, cs.Reputation, cs.Exposure)
	neutral.Printf("staff %d  nearby shops %d  streak %d\n", cs.StaffCount, cs.NearbyShopCount, cs.ConsecutiveProfits)
	for _, line := range cs.Lines {
		neutral.Printf("  %-12s %s\n", line.Metric, line.Display)
	}
}

func printCatalog(e *sim.Engine) {
	cat := e.Catalog
	accent.Println("brands")
	for _, b := range cat.Brands {
		neutral.Printf("  %-16s %-22s fee %.0f, weekly %.0f\n", b.ID, b.Name, b.FranchiseFee, b.WeeklyFee)
	}
	accent.Println("locations")
	for _, l := range cat.Locations {
		neutral.Printf("  %-16s %s\n", l.ID, l.Name)
		for _, a := range l.Addresses {
			neutral.Printf("    %-16s %-22s rent %.0f/sqm\n", a.ID, a.Name, a.RentPerSqm)
		}
	}
	accent.Println("decorations")
	for _, d := range cat.Decorations {
		neutral.Printf("  %-16s %-22s cost %.0f\n", d.ID, d.Name, d.Cost)
	}
	accent.Println("products")
	for _, p := range cat.Products {
		neutral.Printf("  %-18s %-22s cost %.1f, suggested %.1f\n", p.ID, p.Name, p.UnitCost, p.SuggestedPrice)
	}
	accent.Println("staff types")
	for _, s := range cat.StaffTypes {
		neutral.Printf("  %-16s %-22s wage %.0f/wk\n", s.ID, s.Name, s.WeeklyWage)
	}
	accent.Println("marketing")
	for _, m := range cat.Marketing {
		kind := "recurring"
		if m.OneTime {
			kind = "one-time"
		}
		neutral.Printf("  %-16s %-22s cost %.0f (%s)\n", m.ID, m.Name, m.Cost, kind)
	}
	accent.Println("platforms")
	for _, p := range cat.Platforms {
		neutral.Printf("  %-16s %-22s join %.0f, commission %.0f%%\n", p.ID, p.Name, p.JoinFee, p.Commission*100)
	}
}

func printStaff(st sim.GameState) {
	if len(st.Staff) == 0 {
		neutral.Println("no staff")
		return
	}
	for _, s := range st.Staff {
		extra := ""
		if s.FocusProductID != "" {
			extra = " focus " + s.FocusProductID
		}
		neutral.Printf("  %-10s %-12s %s, %dd x %dh, salary %.0f, morale %.0f, skill %.1f%s\n",
			shortID(s.ID), s.Name, s.Task, s.WorkDays, s.WorkHours, s.Salary, s.Morale, s.SkillLevel, extra)
	}
}

func printAlerts(alerts []sim.HealthAlert) {
	for _, a := range alerts {
		line := warn
		if a.Severity == sim.SeverityCritical {
			line = danger
		}
		line.Printf("  [%s] %s\n", a.Severity, a.Message)
	}
}

func printEvent(e *sim.Engine, st sim.GameState) {
	pe := st.PendingEvent
	if pe == nil {
		return
	}
	for _, def := range e.Events {
		if def.ID != pe.EventID {
			continue
		}
		accent.Printf("event: %s\n", def.Title)
		neutral.Println(sim.ResolveDescription(def, st))
		if def.Notification {
			neutral.Printf("  respond %s\n", sim.NotificationOption)
			return
		}
		for _, opt := range def.Options {
			neutral.Printf("  respond %-14s %s\n", opt.ID, opt.Label)
		}
		return
	}
	warn.Printf("pending event %s is not in the catalog\n", pe.EventID)
}

func printResult(e *sim.Engine, st sim.GameState) {
	r := e.ComputeGameResult(st)
	if !r.Ended {
		neutral.Printf("still running, week %d of %d\n", r.Week, st.TotalWeeks)
		return
	}
	switch r.Reason {
	case sim.EndWin:
		success.Printf("the shop made it: week %d, cash %.0f, ROI %.2f\n", r.Week, r.Cash, r.ROI)
	case sim.EndBankrupt:
		danger.Printf("bankrupt at week %d, cash %.0f\n", r.Week, r.Cash)
	default:
		warn.Printf("time ran out at week %d, cash %.0f, ROI %.2f\n", r.Week, r.Cash, r.ROI)
	}
	check := func(ok bool, label string) {
		if ok {
			success.Printf("  [x] %s\n", label)
		} else {
			neutral.Printf("  [ ] %s\n", label)
		}
	}
	check(r.StreakMet, "profit streak")
	check(r.PaybackMet, "investment paid back")
	check(r.ExposureMet, "exposure")
	check(r.ReputationMet, "reputation")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
