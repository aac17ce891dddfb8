package normalization

import "strings"

// entityAliases maps the entity names used by upstream events and websocket
// clients to their canonical form.
var entityAliases = map[string]string{
	"":        "",
	"-":       "",
	"default": "",

	"order":               "orders",
	"orders":              "orders",
	"verification-order":  "orders",
	"verification-orders": "orders",

	"order-request":  "order-requests",
	"order-requests": "order-requests",
	"orderrequest":   "order-requests",
	"orderrequests":  "order-requests",
	"request":        "order-requests",
	"requests":       "order-requests",

	"report":               "reports",
	"reports":              "reports",
	"verification-report":  "reports",
	"verification-reports": "reports",

	"verifier":  "verifiers",
	"verifiers": "verifiers",

	"company":   "companies",
	"companies": "companies",
	"customer":  "companies",
	"customers": "companies",
	"client":    "companies",
	"clients":   "companies",
}

var validEntities = map[string]struct{}{
	"orders":         {},
	"order-requests": {},
	"reports":        {},
	"verifiers":      {},
	"companies":      {},
}

// NormalizeEntity converts singular/plural forms and separator variants to the
// canonical entity name.
//
//	NormalizeEntity("Verification_Report") => "reports"
//	NormalizeEntity("customer") => "companies"
func NormalizeEntity(raw string) string {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if canonical, found := entityAliases[normalized]; found {
		return canonical
	}
	return normalized
}

// IsValidEntity checks if the given entity name is a known entity type.
func IsValidEntity(raw string) bool {
	_, ok := validEntities[NormalizeEntity(raw)]
	return ok
}
