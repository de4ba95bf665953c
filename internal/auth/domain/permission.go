package domain

// Permission is a "<resource>.<action>" string gating one operation.
// Permissions are never assigned individually; they are always derived as
// the full set belonging to a role.
type Permission string

// Permissions used by route declarations.
const (
	PermEmpView   Permission = "emp.view"
	PermEmpList   Permission = "emp.list"
	PermEmpCreate Permission = "emp.create"
	PermEmpEdit   Permission = "emp.edit"
	PermEmpDelete Permission = "emp.delete"

	PermStudentView   Permission = "student.view"
	PermStudentList   Permission = "student.list"
	PermStudentCreate Permission = "student.create"
	PermStudentEdit   Permission = "student.edit"
	PermStudentDelete Permission = "student.delete"

	PermDeptView   Permission = "dept.view"
	PermDeptList   Permission = "dept.list"
	PermDeptCreate Permission = "dept.create"
	PermDeptEdit   Permission = "dept.edit"
	PermDeptDelete Permission = "dept.delete"

	PermClazzView   Permission = "clazz.view"
	PermClazzList   Permission = "clazz.list"
	PermClazzCreate Permission = "clazz.create"
	PermClazzEdit   Permission = "clazz.edit"
	PermClazzDelete Permission = "clazz.delete"

	PermCourseView Permission = "course.view"
	PermCourseEdit Permission = "course.edit"

	PermReportView Permission = "report.view"
	PermLogView    Permission = "log.view"
)

// Role codes attached to employee records.
const (
	RoleClassTeacher     = 1 // 班主任
	RoleLecturer         = 2 // 讲师
	RoleStudentUnionHead = 3 // 学工主管
	RoleResearchHead     = 4 // 教研主管
	RoleConsultant       = 5 // 咨询师
)

// PermissionSet is the set of permissions implied by a role.
type PermissionSet map[Permission]struct{}

// Has reports whether the set contains the permission.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

func setOf(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// baselinePermissions is the read set every role receives.
func baselinePermissions() PermissionSet {
	return setOf(PermStudentView, PermStudentList, PermReportView, PermLogView)
}

// ResolvePermissions maps a role code to its permission set. The table is
// closed and static; it is recomputed on every check and never persisted.
//
// Unknown roles silently degrade to the baseline read set instead of being
// rejected. That is a deliberate fail-safe-open-to-minimum policy carried
// over from the original access model, not an oversight.
func ResolvePermissions(role int) PermissionSet {
	switch role {
	case RoleClassTeacher:
		return setOf(
			PermStudentView, PermStudentEdit, PermStudentList, PermStudentCreate,
			PermReportView, PermLogView,
		)
	case RoleLecturer:
		return baselinePermissions()
	case RoleStudentUnionHead:
		return setOf(
			PermEmpView, PermEmpEdit, PermEmpList, PermEmpCreate, PermEmpDelete,
			PermStudentView, PermStudentEdit, PermStudentList, PermStudentCreate, PermStudentDelete,
			PermDeptView, PermDeptList, PermDeptCreate, PermDeptEdit, PermDeptDelete,
			PermClazzView, PermClazzList, PermClazzCreate, PermClazzEdit, PermClazzDelete,
			PermReportView, PermLogView,
		)
	case RoleResearchHead:
		return setOf(
			PermCourseView, PermCourseEdit,
			PermStudentView, PermStudentList, PermReportView, PermLogView,
		)
	case RoleConsultant:
		return setOf(
			PermStudentView, PermStudentEdit, PermStudentList, PermStudentCreate,
			PermReportView, PermLogView,
		)
	default:
		return baselinePermissions()
	}
}
