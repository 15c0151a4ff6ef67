package entities

// Actor — аутентифицированный вызывающий. Приходит из внешнего identity
// provider (заголовки от api-gateway), никаких пользователей "по умолчанию".
type Actor struct {
	ID          string
	Name        string
	Email       string
	Role        ActorRole
	IsVerified  bool
	CurrentPlan PlanID
}

type ActorRole string

const (
	RoleBusiness  ActorRole = "business"
	RoleLogistics ActorRole = "logistics"
	RoleAdmin     ActorRole = "admin"
)

func (r ActorRole) String() string {
	return string(r)
}
