package enum

import "database/sql/driver"

// PaymentMethod represents how a sale was settled
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodCard PaymentMethod = "card"
)

// Valid reports whether the payment method is one of the two defined tags
func (p PaymentMethod) Valid() bool {
	return p == PaymentMethodCash || p == PaymentMethodCard
}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*p = ""
		return nil
	}
	switch v := value.(type) {
	case string:
		*p = PaymentMethod(v)
	case []byte:
		*p = PaymentMethod(v)
	}
	return nil
}
