package tablehandler

import "sort"

// Registry список таблиц, к которым разрешен доступ через /api/:resource
type Registry struct {
	names map[string]struct{}
}

func NewRegistry(names ...string) Registry {
	r := Registry{names: make(map[string]struct{}, len(names))}
	for _, name := range names {
		if name != "" {
			r.names[name] = struct{}{}
		}
	}
	return r
}

func (r Registry) Allowed(name string) bool {
	_, ok := r.names[name]
	return ok
}

func (r Registry) Names() []string {
	result := make([]string, 0, len(r.names))
	for name := range r.names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
