package entities

import "time"

// Response is the parsed body of one currency service reply.
type Response struct {
	Success bool
	Src     string
	Dst     string
	Error   string
}

type Exchange struct {
	Src       string    `json:"src"`
	Dst       string    `json:"dst"`
	Amount    float64   `json:"amount"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

func NewExchange(src, dst string, amount, result float64, date time.Time) *Exchange {
	return &Exchange{
		Src:       src,
		Dst:       dst,
		Amount:    amount,
		Result:    result,
		CreatedAt: date,
	}
}
