// Package fiat provides fixed-point monetary values in the fiat currencies
// supported by the dashboard, and the map of native-coin prices quoted in them.
package fiat

// Currency identifies one of the supported fiat currencies.
//
// The set is closed: metadata (decimal places, symbol, code, name) is a total
// function over the members, with no fallback entry. A newly supported
// currency must be added to the table explicitly so that it is classified
// with the right number of decimal places rather than inheriting a default.
type Currency uint8

const (
	AED Currency = iota
	ARS
	AUD
	BDT
	BHD
	BRL
	CAD
	CHF
	CLP
	CNY
	CZK
	DKK
	EUR
	GBP
	HKD
	HUF
	IDR
	ILS
	INR
	JPY
	KRW
	KWD
	LKR
	MMK
	MXN
	MYR
	NGN
	NOK
	NZD
	PHP
	PKR
	PLN
	RUB
	SAR
	SEK
	SGD
	THB
	TRY
	TWD
	UAH
	USD
	VND
	ZAR

	numCurrencies
)

// currencyInfo is the static metadata for one catalog member.
type currencyInfo struct {
	code     string
	symbol   string
	name     string
	decimals uint8
}

// currencies is indexed by Currency. Decimal places follow ISO 4217: zero for
// the yen, won, Chilean peso and dong, three for the Kuwaiti and Bahraini
// dinar, two for everything else.
var currencies = [numCurrencies]currencyInfo{
	AED: {"AED", "د.إ", "United Arab Emirates Dirham", 2},
	ARS: {"ARS", "$", "Argentine Peso", 2},
	AUD: {"AUD", "A$", "Australian Dollar", 2},
	BDT: {"BDT", "৳", "Bangladeshi Taka", 2},
	BHD: {"BHD", ".د.ب", "Bahraini Dinar", 3},
	BRL: {"BRL", "R$", "Brazilian Real", 2},
	CAD: {"CAD", "C$", "Canadian Dollar", 2},
	CHF: {"CHF", "CHF", "Swiss Franc", 2},
	CLP: {"CLP", "$", "Chilean Peso", 0},
	CNY: {"CNY", "¥", "Chinese Yuan", 2},
	CZK: {"CZK", "Kč", "Czech Koruna", 2},
	DKK: {"DKK", "kr", "Danish Krone", 2},
	EUR: {"EUR", "€", "Euro", 2},
	GBP: {"GBP", "£", "British Pound", 2},
	HKD: {"HKD", "HK$", "Hong Kong Dollar", 2},
	HUF: {"HUF", "Ft", "Hungarian Forint", 2},
	IDR: {"IDR", "Rp", "Indonesian Rupiah", 2},
	ILS: {"ILS", "₪", "Israeli New Shekel", 2},
	INR: {"INR", "₹", "Indian Rupee", 2},
	JPY: {"JPY", "¥", "Japanese Yen", 0},
	KRW: {"KRW", "₩", "South Korean Won", 0},
	KWD: {"KWD", "د.ك", "Kuwaiti Dinar", 3},
	LKR: {"LKR", "₨", "Sri Lankan Rupee", 2},
	MMK: {"MMK", "K", "Myanmar Kyat", 2},
	MXN: {"MXN", "$", "Mexican Peso", 2},
	MYR: {"MYR", "RM", "Malaysian Ringgit", 2},
	NGN: {"NGN", "₦", "Nigerian Naira", 2},
	NOK: {"NOK", "kr", "Norwegian Krone", 2},
	NZD: {"NZD", "NZ$", "New Zealand Dollar", 2},
	PHP: {"PHP", "₱", "Philippine Peso", 2},
	PKR: {"PKR", "₨", "Pakistani Rupee", 2},
	PLN: {"PLN", "zł", "Polish Złoty", 2},
	RUB: {"RUB", "₽", "Russian Ruble", 2},
	SAR: {"SAR", "﷼", "Saudi Riyal", 2},
	SEK: {"SEK", "kr", "Swedish Krona", 2},
	SGD: {"SGD", "S$", "Singapore Dollar", 2},
	THB: {"THB", "฿", "Thai Baht", 2},
	TRY: {"TRY", "₺", "Turkish Lira", 2},
	TWD: {"TWD", "NT$", "New Taiwan Dollar", 2},
	UAH: {"UAH", "₴", "Ukrainian Hryvnia", 2},
	USD: {"USD", "$", "United States Dollar", 2},
	VND: {"VND", "₫", "Vietnamese Dong", 0},
	ZAR: {"ZAR", "R", "South African Rand", 2},
}

var byCode = func() map[string]Currency {
	m := make(map[string]Currency, numCurrencies)
	for c := Currency(0); c < numCurrencies; c++ {
		m[currencies[c].code] = c
	}
	return m
}()

// All returns every supported currency, in catalog order.
func All() []Currency {
	all := make([]Currency, numCurrencies)
	for c := Currency(0); c < numCurrencies; c++ {
		all[c] = c
	}
	return all
}

// FromCode resolves an uppercase ISO 4217 code to a Currency.
func FromCode(code string) (Currency, bool) {
	c, ok := byCode[code]
	return c, ok
}

// Decimals returns the number of decimal digits used by the currency, e.g.
// 2 for USD (cents) and 0 for JPY.
func (c Currency) Decimals() uint8 {
	return currencies[c].decimals
}

// Symbol returns the display glyph for the currency, e.g. "$".
func (c Currency) Symbol() string {
	return currencies[c].symbol
}

// Code returns the ISO 4217 code for the currency, e.g. "USD".
func (c Currency) Code() string {
	return currencies[c].code
}

// Name returns the human-readable name of the currency.
func (c Currency) Name() string {
	return currencies[c].name
}

func (c Currency) String() string {
	return currencies[c].code
}
