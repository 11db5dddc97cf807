package entity

type LinkedAccount struct {
	Type          string `json:"type"`
	AccountName   string `json:"accountName"`
	AccountNumber string `json:"accountNumber"`
}

type User struct {
	Name          string        `json:"name"`
	Country       string        `json:"country"`
	Mobile        string        `json:"mobile"`
	Email         string        `json:"email"`
	TradingID     string        `json:"tradingId"`
	ProfileImage  string        `json:"profileImage,omitempty"`
	LinkedAccount LinkedAccount `json:"linkedAccount"`
}
