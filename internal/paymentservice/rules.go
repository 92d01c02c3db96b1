package paymentservice

import "github.com/go-petr/pet-payments/internal/domain"

type rule func(account domain.Account, req domain.PaymentRequest) bool

var rules = map[domain.PaymentScheme]rule{
	domain.SchemeBacs: func(a domain.Account, _ domain.PaymentRequest) bool {
		return a.AllowedSchemes.Has(domain.SchemeBacs)
	},
	domain.SchemeFasterPayments: func(a domain.Account, req domain.PaymentRequest) bool {
		return a.AllowedSchemes.Has(domain.SchemeFasterPayments) &&
			a.Balance.GreaterThanOrEqual(req.Amount)
	},
	domain.SchemeChaps: func(a domain.Account, _ domain.PaymentRequest) bool {
		return a.AllowedSchemes.Has(domain.SchemeChaps) &&
			a.Status == domain.StatusLive
	},
}

// Eligible reports whether the account may pay the request through its scheme.
// Requests with an unknown scheme are never eligible.
func Eligible(account domain.Account, req domain.PaymentRequest) bool {
	r, ok := rules[req.PaymentScheme]
	if !ok {
		return false
	}

	return r(account, req)
}
