package sim

import (
	"math"

	"teashop/internal/catalog"
	"teashop/internal/config"
)

// TaskCoverage is the effective working power on one task: skill scaled down
// by fatigue, up by morale, and by how much of a full week the person works.
func TaskCoverage(staff []Staff, task catalog.StaffTask) float64 {
	total := 0.0
	for _, s := range staff {
		if s.Task != task {
			continue
		}
		timeShare := float64(s.WorkDays) / 5 * float64(s.WorkHours) / 8
		if timeShare > 1.5 {
			timeShare = 1.5
		}
		eff := s.SkillLevel * timeShare * (0.6 + 0.4*s.Morale/100) * (1 - s.Fatigue/200)
		if eff > 0 {
			total += eff
		}
	}
	return total
}

// coverageMultiplier maps raw coverage onto a demand multiplier: an unstaffed
// task caps throughput hard, diminishing returns above a couple of workers.
func coverageMultiplier(coverage float64) float64 {
	mult := 0.6 + 0.6*(1-math.Exp(-coverage/4))
	if mult > 1.2 {
		return 1.2
	}
	return mult
}

// ServiceMultiplier combines counter and kitchen coverage for dine-in demand.
func ServiceMultiplier(staff []Staff) float64 {
	counter := coverageMultiplier(TaskCoverage(staff, catalog.TaskCounter))
	kitchen := coverageMultiplier(TaskCoverage(staff, catalog.TaskKitchen))
	return (counter + kitchen) / 2
}

// DeliveryStaffMultiplier gates delivery throughput on runner coverage. With
// no runners the platforms still deliver (their own couriers) but slower.
func DeliveryStaffMultiplier(staff []Staff) float64 {
	cov := TaskCoverage(staff, catalog.TaskDelivery)
	mult := 0.8 + 0.4*(1-math.Exp(-cov/3))
	if mult > 1.15 {
		return 1.15
	}
	return mult
}

// FocusBonus is the extra appeal a product gets from staff focused on it.
func FocusBonus(staff []Staff, productID string) float64 {
	bonus := 0.0
	for _, s := range staff {
		if s.FocusProductID == productID {
			bonus += 0.03 * s.SkillLevel
		}
	}
	if bonus > 0.25 {
		return 0.25
	}
	return bonus
}

// driftStaff applies weekly fatigue build-up, morale drift and skill growth.
func driftStaff(staff []Staff, bal config.Balance) []Staff {
	out := append([]Staff(nil), staff...)
	for i := range out {
		s := &out[i]

		load := float64(s.WorkDays) / 5 * float64(s.WorkHours) / 8
		s.Fatigue += bal.FatiguePerWeek * load
		if load < 0.8 {
			// Light weeks recover.
			s.Fatigue -= bal.FatiguePerWeek
		}
		s.Fatigue = clampScore(s.Fatigue)

		s.Morale -= bal.MoraleDecay
		if s.Fatigue > 70 {
			s.Morale -= 3
		}
		s.Morale = clampScore(s.Morale)

		growth := bal.SkillGrowthPerWeek * (0.5 + s.Morale/200)
		s.SkillLevel += growth
		if s.SkillLevel > 10 {
			s.SkillLevel = 10
		}
	}
	return out
}

// WeeklySalaries is the fixed payroll line of the P&L.
func WeeklySalaries(staff []Staff) float64 {
	total := 0.0
	for _, s := range staff {
		total += s.Salary
	}
	return total
}
