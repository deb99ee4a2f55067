package views

import (
	"github.com/cristianoliveira/hrdesk/internal/domain"
	"github.com/cristianoliveira/hrdesk/internal/query"
)

func employeesView() View {
	schema := query.NewSchema(fields(
		[]query.Field[domain.Employee]{
			text("id", func(e domain.Employee) string { return e.ID }),
			text("employeeId", func(e domain.Employee) string { return e.EmployeeNo }),
			text("firstName", func(e domain.Employee) string { return e.FirstName }),
			text("lastName", func(e domain.Employee) string { return e.LastName }),
			text("name", func(e domain.Employee) string { return e.FullName() }),
			text("email", func(e domain.Employee) string { return e.Email }),
			text("phone", func(e domain.Employee) string { return e.Phone }),
			text("position", func(e domain.Employee) string { return e.Position }),
			text("status", func(e domain.Employee) string { return e.Status.String() }),
			date("hireDate", func(e domain.Employee) domain.Time { return e.HireDate }),
			number("salary", func(e domain.Employee) float64 { return e.Salary }),
			query.StringField("department.name", func(e domain.Employee) (string, bool) { return e.DepartmentName() }),
		},
		userFields("user", func(e domain.Employee) *domain.User { return e.User }),
	)...).
		Searchable("firstName", "lastName", "email", "position", "employeeId", "department.name").
		WithFilters(
			query.FilterDef{Name: "status", Field: "status", Type: query.FilterEquals,
				Options: options(domain.EmployeeActive, domain.EmployeeInactive, domain.EmployeeOnLeave, domain.EmployeeTerminated)},
			query.FilterDef{Name: "department", Field: "department.name", Type: query.FilterEquals},
			query.FilterDef{Name: "hired", Field: "hireDate", Type: query.FilterDateRange},
		)

	return &definition[domain.Employee]{
		kind:        domain.KindEmployees,
		noun:        "employees",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "firstName", Order: query.OrderAsc},
		dateFilter:  "hired",
		columns: []Column{
			{Header: "ID", Path: "employeeId", Width: 8},
			{Header: "Name", Path: "name", Width: 22},
			{Header: "Email", Path: "email", Width: 28},
			{Header: "Position", Path: "position", Width: 20},
			{Header: "Department", Path: "department.name", Width: 16},
			{Header: "Status", Path: "status", Width: 10},
			{Header: "Hired", Path: "hireDate", Width: 10},
		},
	}
}

func departmentsView() View {
	schema := query.NewSchema(fields(
		[]query.Field[domain.Department]{
			text("id", func(d domain.Department) string { return d.ID }),
			text("name", func(d domain.Department) string { return d.Name }),
			text("description", func(d domain.Department) string { return d.Description }),
			number("employeeCount", func(d domain.Department) float64 { return float64(d.EmployeeCount) }),
			date("createdAt", func(d domain.Department) domain.Time { return d.CreatedAt }),
		},
		userFields("manager", func(d domain.Department) *domain.User { return d.Manager }),
	)...).
		Searchable("name", "description", "manager.name", "manager.email").
		WithFilters(
			query.FilterDef{Name: "created", Field: "createdAt", Type: query.FilterDateRange},
		)

	return &definition[domain.Department]{
		kind:        domain.KindDepartments,
		noun:        "departments",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "name", Order: query.OrderAsc},
		dateFilter:  "created",
		columns: []Column{
			{Header: "Name", Path: "name", Width: 20},
			{Header: "Manager", Path: "manager.name", Width: 22},
			{Header: "Employees", Path: "employeeCount", Width: 9},
			{Header: "Description", Path: "description", Width: 36},
		},
	}
}

func attendanceView() View {
	schema := query.NewSchema(fields(
		[]query.Field[domain.AttendanceRecord]{
			text("id", func(a domain.AttendanceRecord) string { return a.ID }),
			date("date", func(a domain.AttendanceRecord) domain.Time { return a.Date }),
			optionalDate("checkIn", func(a domain.AttendanceRecord) *domain.Time { return a.CheckIn }),
			optionalDate("checkOut", func(a domain.AttendanceRecord) *domain.Time { return a.CheckOut }),
			text("status", func(a domain.AttendanceRecord) string { return a.Status.String() }),
			number("hoursWorked", func(a domain.AttendanceRecord) float64 { return a.HoursWorked }),
			text("method", func(a domain.AttendanceRecord) string { return a.Method }),
		},
		employeeFields("employee", func(a domain.AttendanceRecord) *domain.Employee { return a.Employee }),
	)...).
		Searchable("employee.firstName", "employee.lastName", "employee.email", "employee.department.name", "status").
		WithFilters(
			query.FilterDef{Name: "status", Field: "status", Type: query.FilterEquals,
				Options: options(domain.AttendancePresent, domain.AttendanceAbsent, domain.AttendanceLate, domain.AttendanceHalfDay, domain.AttendanceOnLeave)},
			query.FilterDef{Name: "department", Field: "employee.department.name", Type: query.FilterEquals},
			query.FilterDef{Name: "employee", Field: "employee.employeeId", Type: query.FilterEquals},
			query.FilterDef{Name: "date", Field: "date", Type: query.FilterDateRange},
		)

	return &definition[domain.AttendanceRecord]{
		kind:        domain.KindAttendance,
		noun:        "records",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "date", Order: query.OrderDesc},
		dateFilter:  "date",
		columns: []Column{
			{Header: "Date", Path: "date", Width: 10},
			{Header: "Employee", Path: "employee.name", Width: 22},
			{Header: "Department", Path: "employee.department.name", Width: 16},
			{Header: "Check in", Path: "checkIn", Width: 16},
			{Header: "Check out", Path: "checkOut", Width: 16},
			{Header: "Hours", Path: "hoursWorked", Width: 5},
			{Header: "Status", Path: "status", Width: 9},
		},
	}
}

func leaveRequestsView() View {
	schema := query.NewSchema(fields(
		[]query.Field[domain.LeaveRequest]{
			text("id", func(l domain.LeaveRequest) string { return l.ID }),
			text("leaveType", func(l domain.LeaveRequest) string { return l.LeaveType.String() }),
			text("status", func(l domain.LeaveRequest) string { return l.Status.String() }),
			date("startDate", func(l domain.LeaveRequest) domain.Time { return l.StartDate }),
			date("endDate", func(l domain.LeaveRequest) domain.Time { return l.EndDate }),
			number("days", func(l domain.LeaveRequest) float64 { return float64(l.Days()) }),
			text("reason", func(l domain.LeaveRequest) string { return l.Reason }),
			date("createdAt", func(l domain.LeaveRequest) domain.Time { return l.CreatedAt }),
		},
		employeeFields("employee", func(l domain.LeaveRequest) *domain.Employee { return l.Employee }),
		userFields("approvedBy", func(l domain.LeaveRequest) *domain.User { return l.Approver }),
	)...).
		Searchable("employee.firstName", "employee.lastName", "employee.email", "employee.user.email", "reason", "leaveType").
		WithFilters(
			query.FilterDef{Name: "status", Field: "status", Type: query.FilterEquals,
				Options: options(domain.LeavePending, domain.LeaveApproved, domain.LeaveRejected, domain.LeaveCancelled)},
			query.FilterDef{Name: "type", Field: "leaveType", Type: query.FilterEquals,
				Options: options(domain.LeaveAnnual, domain.LeaveSick, domain.LeavePersonal, domain.LeaveMaternity, domain.LeavePaternity, domain.LeaveUnpaid)},
			query.FilterDef{Name: "department", Field: "employee.department.name", Type: query.FilterEquals},
			query.FilterDef{Name: "employee", Field: "employee.employeeId", Type: query.FilterEquals},
			query.FilterDef{Name: "start", Field: "startDate", Type: query.FilterDateRange},
		)

	return &definition[domain.LeaveRequest]{
		kind:        domain.KindLeaveRequests,
		noun:        "requests",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "createdAt", Order: query.OrderDesc},
		dateFilter:  "start",
		columns: []Column{
			{Header: "Employee", Path: "employee.name", Width: 22},
			{Header: "Type", Path: "leaveType", Width: 9},
			{Header: "From", Path: "startDate", Width: 10},
			{Header: "To", Path: "endDate", Width: 10},
			{Header: "Days", Path: "days", Width: 4},
			{Header: "Status", Path: "status", Width: 9},
			{Header: "Reason", Path: "reason", Width: 30},
		},
	}
}

func jobPostingsView() View {
	schema := query.NewSchema(
		text("id", func(j domain.JobPosting) string { return j.ID }),
		text("title", func(j domain.JobPosting) string { return j.Title }),
		text("description", func(j domain.JobPosting) string { return j.Description }),
		departmentName("department.name", func(j domain.JobPosting) *domain.Department { return j.Department }),
		text("location", func(j domain.JobPosting) string { return j.Location }),
		text("employmentType", func(j domain.JobPosting) string { return j.EmploymentType }),
		text("status", func(j domain.JobPosting) string { return j.Status.String() }),
		date("postedAt", func(j domain.JobPosting) domain.Time { return j.PostedAt }),
		optionalDate("deadline", func(j domain.JobPosting) *domain.Time { return j.Deadline }),
		number("applicantCount", func(j domain.JobPosting) float64 { return float64(j.ApplicantCount) }),
	).
		Searchable("title", "description", "department.name", "location").
		WithFilters(
			query.FilterDef{Name: "status", Field: "status", Type: query.FilterEquals,
				Options: options(domain.JobDraft, domain.JobOpen, domain.JobClosed)},
			query.FilterDef{Name: "department", Field: "department.name", Type: query.FilterEquals},
			query.FilterDef{Name: "type", Field: "employmentType", Type: query.FilterEquals},
			query.FilterDef{Name: "posted", Field: "postedAt", Type: query.FilterDateRange},
		)

	return &definition[domain.JobPosting]{
		kind:        domain.KindJobPostings,
		noun:        "postings",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "postedAt", Order: query.OrderDesc},
		dateFilter:  "posted",
		columns: []Column{
			{Header: "Title", Path: "title", Width: 26},
			{Header: "Department", Path: "department.name", Width: 16},
			{Header: "Location", Path: "location", Width: 14},
			{Header: "Status", Path: "status", Width: 6},
			{Header: "Posted", Path: "postedAt", Width: 10},
			{Header: "Deadline", Path: "deadline", Width: 10},
			{Header: "Applicants", Path: "applicantCount", Width: 10},
		},
	}
}

func onboardingView() View {
	schema := query.NewSchema(fields(
		[]query.Field[domain.OnboardingProcess]{
			text("id", func(o domain.OnboardingProcess) string { return o.ID }),
			text("status", func(o domain.OnboardingProcess) string { return o.Status.String() }),
			date("startDate", func(o domain.OnboardingProcess) domain.Time { return o.StartDate }),
			optionalDate("dueDate", func(o domain.OnboardingProcess) *domain.Time { return o.DueDate }),
			number("progress", func(o domain.OnboardingProcess) float64 { return o.Progress() }),
		},
		employeeFields("employee", func(o domain.OnboardingProcess) *domain.Employee { return o.Employee }),
	)...).
		Searchable("employee.firstName", "employee.lastName", "employee.email", "employee.position", "employee.department.name").
		WithFilters(
			query.FilterDef{Name: "status", Field: "status", Type: query.FilterEquals,
				Options: options(domain.OnboardingNotStarted, domain.OnboardingInProgress, domain.OnboardingCompleted)},
			query.FilterDef{Name: "department", Field: "employee.department.name", Type: query.FilterEquals},
			query.FilterDef{Name: "start", Field: "startDate", Type: query.FilterDateRange},
		)

	return &definition[domain.OnboardingProcess]{
		kind:        domain.KindOnboarding,
		noun:        "processes",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "startDate", Order: query.OrderDesc},
		dateFilter:  "start",
		columns: []Column{
			{Header: "Employee", Path: "employee.name", Width: 22},
			{Header: "Position", Path: "employee.position", Width: 20},
			{Header: "Status", Path: "status", Width: 11},
			{Header: "Started", Path: "startDate", Width: 10},
			{Header: "Due", Path: "dueDate", Width: 10},
			{Header: "Progress %", Path: "progress", Width: 10},
		},
	}
}

func auditLogsView() View {
	schema := query.NewSchema(fields(
		[]query.Field[domain.AuditLog]{
			text("id", func(a domain.AuditLog) string { return a.ID }),
			text("action", func(a domain.AuditLog) string { return a.Action.String() }),
			text("entityType", func(a domain.AuditLog) string { return a.EntityType }),
			text("entityId", func(a domain.AuditLog) string { return a.EntityID }),
			text("details", func(a domain.AuditLog) string { return a.Details }),
			text("ipAddress", func(a domain.AuditLog) string { return a.IPAddress }),
			date("timestamp", func(a domain.AuditLog) domain.Time { return a.Timestamp }),
		},
		userFields("user", func(a domain.AuditLog) *domain.User { return a.User }),
	)...).
		Searchable("details", "entityType", "entityId", "user.email", "user.name", "ipAddress").
		WithFilters(
			query.FilterDef{Name: "action", Field: "action", Type: query.FilterEquals,
				Options: options(domain.AuditCreate, domain.AuditUpdate, domain.AuditDelete, domain.AuditLogin, domain.AuditLogout, domain.AuditApprove, domain.AuditReject)},
			query.FilterDef{Name: "entity", Field: "entityType", Type: query.FilterEquals},
			query.FilterDef{Name: "user", Field: "user.email", Type: query.FilterEquals},
			query.FilterDef{Name: "date", Field: "timestamp", Type: query.FilterDateRange},
		)

	return &definition[domain.AuditLog]{
		kind:        domain.KindAuditLogs,
		noun:        "entries",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "timestamp", Order: query.OrderDesc},
		dateFilter:  "date",
		columns: []Column{
			{Header: "When", Path: "timestamp", Width: 16},
			{Header: "User", Path: "user.email", Width: 24},
			{Header: "Action", Path: "action", Width: 7},
			{Header: "Entity", Path: "entityType", Width: 14},
			{Header: "Details", Path: "details", Width: 36},
		},
	}
}

func notificationsView() View {
	schema := query.NewSchema(
		text("id", func(n domain.Notification) string { return n.ID }),
		text("title", func(n domain.Notification) string { return n.Title }),
		text("message", func(n domain.Notification) string { return n.Message }),
		text("type", func(n domain.Notification) string { return n.Type.String() }),
		query.BoolField("isRead", func(n domain.Notification) (bool, bool) { return n.Read, true }),
		text("link", func(n domain.Notification) string { return n.Link }),
		date("createdAt", func(n domain.Notification) domain.Time { return n.CreatedAt }),
	).
		Searchable("title", "message").
		WithFilters(
			query.FilterDef{Name: "type", Field: "type", Type: query.FilterEquals,
				Options: options(domain.NotificationInfo, domain.NotificationSuccess, domain.NotificationWarning, domain.NotificationError)},
			query.FilterDef{Name: "read", Field: "isRead", Type: query.FilterEquals, Options: []string{"false", "true"}},
			query.FilterDef{Name: "date", Field: "createdAt", Type: query.FilterDateRange},
		)

	return &definition[domain.Notification]{
		kind:        domain.KindNotifications,
		noun:        "notifications",
		schema:      schema,
		defaultSort: query.SortSpec{Field: "createdAt", Order: query.OrderDesc},
		dateFilter:  "date",
		columns: []Column{
			{Header: "ID", Path: "id", Width: 10},
			{Header: "Type", Path: "type", Width: 7},
			{Header: "Title", Path: "title", Width: 26},
			{Header: "Message", Path: "message", Width: 40},
			{Header: "Read", Path: "isRead", Width: 4},
			{Header: "Created", Path: "createdAt", Width: 16},
		},
	}
}
