package bistfolio

import (
	"fmt"
	"math"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

// DefaultUsdTryRate is used when no rate is stored and none can be fetched.
const DefaultUsdTryRate = 32.5

// rateAPIURL serves the latest USD exchange rates as
//
//	{"result": "success", "rates": {"TRY": 41.2, ...}}
var rateAPIURL = "https://open.er-api.com/v6/latest/USD"

// FetchUsdTryRate fetches the current USD/TRY exchange rate. Responses are
// served from the daily disk cache, so repeated report runs hit the API at
// most once a day.
func FetchUsdTryRate() (float64, error) {
	return fetchUsdTryRate(daily(), rateAPIURL)
}

func fetchUsdTryRate(client *http.Client, addr string) (float64, error) {
	var jobj any
	if err := jwget(client, addr, &jobj); err != nil {
		return math.NaN(), fmt.Errorf("cannot fetch USD/TRY rate: %w", err)
	}

	result, err := jsonpath.Get("$.result", jobj)
	if err != nil || result != "success" {
		return math.NaN(), fmt.Errorf("exchange rate API did not succeed: %v", result)
	}

	jval, err := jsonpath.Get("$.rates.TRY", jobj)
	if err != nil {
		return math.NaN(), fmt.Errorf("exchange rate response has no TRY rate: %w", err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	rate, ok := jval.(float64)
	if !ok {
		return math.NaN(), fmt.Errorf("exchange rate TRY value is not a number: %v", jval)
	}
	if rate <= 0 {
		return math.NaN(), fmt.Errorf("exchange rate TRY value is not positive: %v", rate)
	}
	return rate, nil
}
