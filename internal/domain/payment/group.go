package payment

import (
	"sort"
	"time"

	"github.com/cmlabs-hris/backoffice-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type DateGroup struct {
	Date     time.Time
	Total    decimal.Decimal
	Payments []Payment
}

// GroupByDate buckets payments per calendar day, newest day first, keeping
// the input order inside each day.
func GroupByDate(payments []Payment) []DateGroup {
	index := make(map[time.Time]int)
	var groups []DateGroup

	for _, p := range payments {
		day := validator.DateOnly(p.Date)
		i, ok := index[day]
		if !ok {
			i = len(groups)
			index[day] = i
			groups = append(groups, DateGroup{Date: day, Total: decimal.Zero})
		}
		groups[i].Payments = append(groups[i].Payments, p)
		groups[i].Total = groups[i].Total.Add(p.Amount)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return groups[a].Date.After(groups[b].Date)
	})
	return groups
}
