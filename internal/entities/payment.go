package entities

// PaymentInit — результат инициализации транзакции у платёжного провайдера.
// Бизнес завершает оплату по AuthorizationURL, подтверждение приходит
// асинхронно событием escrow.funded.
type PaymentInit struct {
	AuthorizationURL string
	AccessCode       string
	Reference        string
}

// PaymentVerification — состояние транзакции по данным провайдера.
type PaymentVerification struct {
	Reference string
	Status    string
	Amount    int64
	Currency  string
}
