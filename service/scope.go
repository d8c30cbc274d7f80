package service

// RoleSuperAdmin may act on any hospital.
const RoleSuperAdmin = "super admin"

// Scope is the resolved caller identity handed to every operation.
// A zero HospitalID means the caller is not bound to one hospital.
type Scope struct {
	UserID     uint
	HospitalID uint
	Roles      []string
}

// HospitalScoped reports whether the caller is restricted to one hospital.
func (s Scope) HospitalScoped() bool {
	return s.HospitalID != 0
}

// HasRole reports whether the caller carries role.
func (s Scope) HasRole(role string) bool {
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

func (s Scope) IsSuperAdmin() bool {
	return s.HasRole(RoleSuperAdmin)
}

// CheckHospital fails Forbidden when a hospital-scoped caller touches
// another hospital's data.
func (s Scope) CheckHospital(hospitalID uint) error {
	if s.HospitalScoped() && s.HospitalID != hospitalID {
		return Forbidden("you are not allowed to access resources of another hospital")
	}
	return nil
}
