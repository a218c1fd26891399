package catalog

// StaffTask is a weekly assignment for an employee.
type StaffTask string

const (
	TaskCounter  StaffTask = "counter"
	TaskKitchen  StaffTask = "kitchen"
	TaskDelivery StaffTask = "delivery"
	TaskPromo    StaffTask = "promo"
)

// StaffType is a hireable role template.
type StaffType struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	WeeklyWage  float64   `yaml:"weekly_wage"`
	BaseSkill   float64   `yaml:"base_skill"`
	DefaultTask StaffTask `yaml:"default_task"`
}

func defaultStaffTypes() []StaffType {
	return []StaffType{
		{ID: "barista", Name: "Barista", WeeklyWage: 1_100, BaseSkill: 3.0, DefaultTask: TaskKitchen},
		{ID: "cashier", Name: "Cashier", WeeklyWage: 900, BaseSkill: 2.2, DefaultTask: TaskCounter},
		{ID: "senior_barista", Name: "Senior Barista", WeeklyWage: 1_700, BaseSkill: 4.4, DefaultTask: TaskKitchen},
		{ID: "runner", Name: "Delivery Runner", WeeklyWage: 950, BaseSkill: 2.0, DefaultTask: TaskDelivery},
		{ID: "promoter", Name: "Street Promoter", WeeklyWage: 850, BaseSkill: 1.8, DefaultTask: TaskPromo},
	}
}
