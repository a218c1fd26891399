package catalog

// ProductCategory groups menu items for spoilage and competition math.
type ProductCategory string

const (
	ProductDrink   ProductCategory = "drink"
	ProductSnack   ProductCategory = "snack"
	ProductDessert ProductCategory = "dessert"
)

// Product is a menu item template. Appeal weights how strongly each customer
// segment wants it; WasteRate is the weekly spoilage fraction of unsold stock.
type Product struct {
	ID             string                   `yaml:"id"`
	Name           string                   `yaml:"name"`
	Category       ProductCategory          `yaml:"category"`
	UnitCost       float64                  `yaml:"unit_cost"`
	SuggestedPrice float64                  `yaml:"suggested_price"`
	Appeal         map[CustomerType]float64 `yaml:"appeal"`
	WasteRate      float64                  `yaml:"waste_rate"`
}

func defaultProducts() []Product {
	return []Product{
		{ID: "classic_milk_tea", Name: "Classic Milk Tea", Category: ProductDrink, UnitCost: 4.2, SuggestedPrice: 14,
			Appeal: map[CustomerType]float64{CustomerStudent: 1.2, CustomerWorker: 1.0, CustomerResident: 0.9, CustomerTourist: 0.9}, WasteRate: 0.04},
		{ID: "fruit_tea", Name: "Fresh Fruit Tea", Category: ProductDrink, UnitCost: 6.8, SuggestedPrice: 19,
			Appeal: map[CustomerType]float64{CustomerStudent: 1.0, CustomerWorker: 1.1, CustomerResident: 0.9, CustomerTourist: 1.2}, WasteRate: 0.10},
		{ID: "brown_sugar_boba", Name: "Brown Sugar Boba", Category: ProductDrink, UnitCost: 5.5, SuggestedPrice: 17,
			Appeal: map[CustomerType]float64{CustomerStudent: 1.3, CustomerWorker: 0.9, CustomerResident: 0.8, CustomerTourist: 1.1}, WasteRate: 0.06},
		{ID: "cold_brew", Name: "Cold Brew Coffee", Category: ProductDrink, UnitCost: 5.0, SuggestedPrice: 18,
			Appeal: map[CustomerType]float64{CustomerStudent: 0.7, CustomerWorker: 1.4, CustomerResident: 0.8, CustomerTourist: 0.8}, WasteRate: 0.03},
		{ID: "lemonade", Name: "Hand-Shaken Lemonade", Category: ProductDrink, UnitCost: 3.4, SuggestedPrice: 12,
			Appeal: map[CustomerType]float64{CustomerStudent: 1.1, CustomerWorker: 0.9, CustomerResident: 1.0, CustomerTourist: 1.0}, WasteRate: 0.05},
		{ID: "egg_waffle", Name: "Egg Waffle", Category: ProductSnack, UnitCost: 3.8, SuggestedPrice: 13,
			Appeal: map[CustomerType]float64{CustomerStudent: 1.1, CustomerWorker: 0.7, CustomerResident: 0.9, CustomerTourist: 1.3}, WasteRate: 0.08},
		{ID: "toast_box", Name: "Thick Toast Box", Category: ProductSnack, UnitCost: 4.6, SuggestedPrice: 16,
			Appeal: map[CustomerType]float64{CustomerStudent: 0.9, CustomerWorker: 1.0, CustomerResident: 1.0, CustomerTourist: 0.9}, WasteRate: 0.07},
		{ID: "pudding_cup", Name: "Caramel Pudding Cup", Category: ProductDessert, UnitCost: 3.0, SuggestedPrice: 11,
			Appeal: map[CustomerType]float64{CustomerStudent: 1.0, CustomerWorker: 0.8, CustomerResident: 1.1, CustomerTourist: 0.9}, WasteRate: 0.09},
	}
}
