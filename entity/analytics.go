package entity

// Analytics response types. The backend aggregates in Mongo, so grouped
// rows carry their key in "_id". Every field is optional on the wire;
// missing values decode to zero.

type AnalyticsSummary struct {
	TotalOrders    int     `json:"totalOrders"`
	TotalRevenue   float64 `json:"totalRevenue"`
	AvgOrderValue  float64 `json:"avgOrderValue"`
	TotalItemsSold int     `json:"totalItemsSold"`
}

// DailyOrdersPoint groups by calendar day (ID is "YYYY-MM-DD").
type DailyOrdersPoint struct {
	ID           string  `json:"_id"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// HourlyOrdersPoint groups by hour of day (0-23) for a single date.
type HourlyOrdersPoint struct {
	ID           int     `json:"_id"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type VegBucket struct {
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type VegSplit struct {
	Veg    VegBucket `json:"veg"`
	NonVeg VegBucket `json:"nonVeg"`
}

// TopItem groups by item name.
type TopItem struct {
	ID           string  `json:"_id"`
	TotalSold    int     `json:"totalSold"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// CategorySales groups by category name.
type CategorySales struct {
	ID           string  `json:"_id"`
	TotalOrders  int     `json:"totalOrders"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// RepeatCustomer groups by phone number.
type RepeatCustomer struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	TotalOrders int     `json:"totalOrders"`
	TotalSpent  float64 `json:"totalSpent"`
}

// ProfitableItem is the single most profitable item (ID is the item name).
type ProfitableItem struct {
	ID           string  `json:"_id"`
	Revenue      int     `json:"revenue"`
	Profit       float64 `json:"profit"`
	ProfitMargin float64 `json:"profitMargin"`
}
