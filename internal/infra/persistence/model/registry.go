package model

// Bookstore returns the bookstore models in dependency order.
func Bookstore() []any {
	return []any{
		&UserModel{},
		&AuthorModel{},
		&AuthorFollowerModel{},
		&PublisherModel{},
		&BookModel{},
		&SkillModel{},
		&PersonModel{},
	}
}

// HR returns the HR models in dependency order.
func HR() []any {
	return []any{
		&DepartmentModel{},
		&EmployeeModel{},
		&ProjectModel{},
		&ProjectAssignmentModel{},
		&TaskModel{},
		&LeaveRequestModel{},
		&AppraisalModel{},
		&AssetModel{},
		&PayrollModel{},
	}
}

// All returns every model of both schemas in dependency order.
func All() []any {
	return append(Bookstore(), HR()...)
}
