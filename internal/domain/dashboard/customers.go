package dashboard

import "strings"

// CustomerFilter фильтр списка клиентов
type CustomerFilter struct {
	Cluster string
	UF      string
	Query   string
	Limit   int
	Offset  int
}

// FilterCustomers отбирает клиентов по cluster, uf и подстроке в nome/user_id/cidade.
// Возвращает страницу и общее число совпавших клиентов.
func FilterCustomers(customers []Customer, filter CustomerFilter) ([]Customer, int) {
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	matched := make([]Customer, 0)
	for _, c := range customers {
		if filter.Cluster != "" && !strings.EqualFold(c.Cluster, filter.Cluster) {
			continue
		}
		if filter.UF != "" && !strings.EqualFold(c.UF, filter.UF) {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Nome), query) &&
			!strings.Contains(strings.ToLower(c.UserID), query) &&
			!strings.Contains(strings.ToLower(c.Cidade), query) {
			continue
		}
		matched = append(matched, c)
	}

	total := len(matched)
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Offset >= total {
		return []Customer{}, total
	}
	end := total
	if filter.Limit > 0 && filter.Offset+filter.Limit < total {
		end = filter.Offset + filter.Limit
	}
	return matched[filter.Offset:end], total
}

// FindCustomer ищет клиента по user_id
func FindCustomer(customers []Customer, userID string) (Customer, bool) {
	for _, c := range customers {
		if c.UserID == userID {
			return c, true
		}
	}
	return Customer{}, false
}
