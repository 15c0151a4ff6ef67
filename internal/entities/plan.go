package entities

type PlanID string

const (
	PlanBasic      PlanID = "basic"
	PlanPro        PlanID = "pro"
	PlanEnterprise PlanID = "enterprise"
)

func (p PlanID) String() string {
	return string(p)
}

// Plan — тариф логистической компании. Комиссия хранится в базисных пунктах
// (сотых долях процента), чтобы расчёт оставался целочисленным.
type Plan struct {
	ID             PlanID
	Name           string
	FeeBasisPoints int64
	Description    string
}

// FeePercent — процент комиссии для отображения.
func (p Plan) FeePercent() float64 {
	return float64(p.FeeBasisPoints) / 100
}
