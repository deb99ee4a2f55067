package views

import (
	"time"

	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
)

// text declares a string field that is always present.
func text[T any](path string, get func(T) string) query.Field[T] {
	return query.StringField(path, func(e T) (string, bool) { return get(e), true })
}

// date declares a time field; the zero time counts as absent.
func date[T any](path string, get func(T) domain.Time) query.Field[T] {
	return query.TimeField(path, func(e T) (time.Time, bool) {
		t := get(e)
		return t.Time, !t.IsZero()
	})
}

// optionalDate declares a time field read through a pointer.
func optionalDate[T any](path string, get func(T) *domain.Time) query.Field[T] {
	return query.TimeField(path, func(e T) (time.Time, bool) {
		t := get(e)
		if t == nil || t.IsZero() {
			return time.Time{}, false
		}
		return t.Time, true
	})
}

func number[T any](path string, get func(T) float64) query.Field[T] {
	return query.NumberField(path, func(e T) (float64, bool) { return get(e), true })
}

// employeeFields declares the fields of an optional nested employee under prefix.
func employeeFields[T any](prefix string, get func(T) *domain.Employee) []query.Field[T] {
	nested := func(path string, read func(*domain.Employee) (string, bool)) query.Field[T] {
		return query.StringField(prefix+"."+path, func(e T) (string, bool) {
			emp := get(e)
			if emp == nil {
				return "", false
			}
			return read(emp)
		})
	}
	return []query.Field[T]{
		nested("firstName", func(emp *domain.Employee) (string, bool) { return emp.FirstName, true }),
		nested("lastName", func(emp *domain.Employee) (string, bool) { return emp.LastName, true }),
		nested("name", func(emp *domain.Employee) (string, bool) { return emp.FullName(), true }),
		nested("email", func(emp *domain.Employee) (string, bool) { return emp.Email, true }),
		nested("employeeId", func(emp *domain.Employee) (string, bool) { return emp.EmployeeNo, true }),
		nested("position", func(emp *domain.Employee) (string, bool) { return emp.Position, true }),
		nested("department.name", (*domain.Employee).DepartmentName),
		nested("user.email", func(emp *domain.Employee) (string, bool) {
			if emp.User == nil {
				return "", false
			}
			return emp.User.Email, true
		}),
	}
}

// userFields declares the fields of an optional nested user under prefix.
func userFields[T any](prefix string, get func(T) *domain.User) []query.Field[T] {
	nested := func(path string, read func(*domain.User) string) query.Field[T] {
		return query.StringField(prefix+"."+path, func(e T) (string, bool) {
			u := get(e)
			if u == nil {
				return "", false
			}
			return read(u), true
		})
	}
	return []query.Field[T]{
		nested("email", func(u *domain.User) string { return u.Email }),
		nested("name", func(u *domain.User) string { return u.FullName() }),
		nested("role", func(u *domain.User) string { return u.Role.String() }),
	}
}

func departmentName[T any](path string, get func(T) *domain.Department) query.Field[T] {
	return query.StringField(path, func(e T) (string, bool) {
		d := get(e)
		if d == nil {
			return "", false
		}
		return d.Name, true
	})
}

func fields[T any](groups ...[]query.Field[T]) []query.Field[T] {
	var out []query.Field[T]
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func options[S ~string](values ...S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}
