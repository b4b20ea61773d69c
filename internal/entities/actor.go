package entities

type ActorRole string

const (
	RoleBuyer  ActorRole = "BUYER"
	RoleSeller ActorRole = "SELLER"
	RoleSystem ActorRole = "SYSTEM"
)

func (r ActorRole) String() string {
	return string(r)
}

// Actor - аутентифицированный пользователь, от имени которого выполняется запрос.
type Actor struct {
	ID string
}

type EntityKind string

const (
	KindOrder       EntityKind = "order"
	KindCustomOrder EntityKind = "custom_order"
)

func (k EntityKind) String() string {
	return string(k)
}
