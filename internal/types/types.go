// internal/types/types.go
package types

// EntityID — индекс слота в пуле своего вида сущностей.
// ID одного пула не имеет смысла в другом.
type EntityID int

// NoEntity — ID, который не указывает ни на один слот.
const NoEntity EntityID = -1
