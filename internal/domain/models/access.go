package models

// Tier уровень привилегий запроса.
type Tier string

const (
	TierPublic      Tier = "public"
	TierTenantAdmin Tier = "tenant-admin"
	TierSuperAdmin  Tier = "super-admin"
)

// AccessContext живет в течение одного запроса и выводится заново из предъявленных данных.
type AccessContext struct {
	Wedding *Wedding
	Slug    string
	Tier    Tier
}

// Resolved сообщает, определен ли уже тенант.
func (a *AccessContext) Resolved() bool {
	return a != nil && a.Wedding != nil
}
