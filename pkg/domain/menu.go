package domain

// MenuItem is a record returned by the external validation service.
// The engine only needs the names.
type MenuItem struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// MenuNames returns item names in service order.
func MenuNames(items []MenuItem) []string {
	names := make([]string, 0, len(items))
	for _, it := range items {
		names = append(names, it.Name)
	}
	return names
}
