package bistfolio

// StockHolding is the valuation of one currently held ticker. Pointer fields
// are nil when the underlying data is unknown: price-dependent fields require
// a resolvable latest price, and USD fields require at least one lot (or the
// current rate) to carry exchange information.
type StockHolding struct {
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`

	// TRY values
	AverageCost               float64  `json:"averageCost"`
	TotalCost                 float64  `json:"totalCost"`
	CurrentPrice              *float64 `json:"currentPrice,omitempty"`
	MarketValue               *float64 `json:"marketValue,omitempty"`
	UnrealizedGainLoss        *float64 `json:"unrealizedGainLoss,omitempty"`
	UnrealizedGainLossPercent *float64 `json:"unrealizedGainLossPercent,omitempty"`

	// USD values
	AverageCostUsd        *float64 `json:"averageCostUsd,omitempty"`
	TotalCostUsd          *float64 `json:"totalCostUsd,omitempty"`
	MarketValueUsd        *float64 `json:"marketValueUsd,omitempty"`
	UnrealizedGainLossUsd *float64 `json:"unrealizedGainLossUsd,omitempty"`
}

// Portfolio is the full set of current holdings with portfolio-level totals.
// Totals are plain sums over holdings; a holding's unknown value contributes
// zero rather than making the total unknown.
type Portfolio struct {
	Holdings []StockHolding `json:"holdings"`

	// TRY totals
	TotalMarketValue               float64 `json:"totalMarketValue"`
	TotalCost                      float64 `json:"totalCost"`
	TotalUnrealizedGainLoss        float64 `json:"totalUnrealizedGainLoss"`
	TotalUnrealizedGainLossPercent float64 `json:"totalUnrealizedGainLossPercent"`

	// USD totals
	TotalMarketValueUsd        float64 `json:"totalMarketValueUsd"`
	TotalCostUsd               float64 `json:"totalCostUsd"`
	TotalUnrealizedGainLossUsd float64 `json:"totalUnrealizedGainLossUsd"`
}

// RealizedGainLoss records the outcome of one sell transaction that matched
// at least one buy lot. The three USD fields are populated together or not at
// all: they require the sell's own rate and a rate on every consumed lot
// fragment.
type RealizedGainLoss struct {
	ID       string  `json:"id"` // the sell transaction's ID
	Ticker   string  `json:"ticker"`
	Quantity float64 `json:"quantity"`
	SellDate Date    `json:"sellDate"`

	// TRY values
	SellPrice       float64 `json:"sellPrice"`
	CostBasis       float64 `json:"costBasis"`
	RealizedGain    float64 `json:"realizedGain"`
	NetSellProceeds float64 `json:"netSellProceeds"`

	// USD values
	CostBasisUsd       *float64 `json:"costBasisUsd,omitempty"`
	NetSellProceedsUsd *float64 `json:"netSellProceedsUsd,omitempty"`
	RealizedGainUsd    *float64 `json:"realizedGainUsd,omitempty"`
}
