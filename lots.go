package bistfolio

// Epsilon is the tolerance under which a quantity is considered zero.
// Repeated float subtraction leaves residual dust on lots; comparisons
// against Epsilon keep that dust from surviving as phantom positions.
const Epsilon = 1e-9

// buyLot is a discrete quantity of a security acquired by one buy
// transaction, consumed in FIFO order by later sells. It lives only for the
// duration of one valuation pass.
type buyLot struct {
	remaining      float64 // quantity not yet consumed by sells
	unitPrice      float64 // TRY price per unit
	date           Date
	usdTryRate     float64 // 0 when the buy carried no rate
	commissionRate float64
}

// cost returns the TRY cost basis of a quantity taken from this lot,
// commission included.
func (l buyLot) cost(quantity float64) float64 {
	return quantity * l.unitPrice * (1 + l.commissionRate)
}

// lotQueue is the FIFO queue of open lots for one ticker.
type lotQueue []buyLot

// consume takes quantity units off the front of the queue and returns the
// accumulated TRY cost basis, the USD cost basis of the rated portion, and
// whether any consumed lot was missing its rate. If the queue runs out the
// unmatched remainder is left unconsumed; the caller decides what that means.
func (q *lotQueue) consume(quantity float64) (cost, costUsd float64, usdIncomplete bool) {
	for quantity > 0 && len(*q) > 0 {
		lot := &(*q)[0]
		taken := min(quantity, lot.remaining)

		portion := lot.cost(taken)
		cost += portion
		if lot.usdTryRate > 0 {
			costUsd += portion / lot.usdTryRate
		} else {
			usdIncomplete = true
		}

		lot.remaining -= taken
		quantity -= taken
		if lot.remaining <= Epsilon {
			*q = (*q)[1:]
		}
	}
	return cost, costUsd, usdIncomplete
}

// totalQuantity sums the remaining quantity over all open lots.
func (q lotQueue) totalQuantity() float64 {
	var total float64
	for _, lot := range q {
		total += lot.remaining
	}
	return total
}

// totalCost sums the remaining TRY cost basis over all open lots, commission
// included, and the USD cost basis of the lots that carry a rate. Unlike
// realized gains, the USD sum here is best-effort: unrated lots simply do
// not contribute.
func (q lotQueue) totalCost() (cost, costUsd float64) {
	for _, lot := range q {
		portion := lot.cost(lot.remaining)
		cost += portion
		if lot.usdTryRate > 0 {
			costUsd += portion / lot.usdTryRate
		}
	}
	return cost, costUsd
}
