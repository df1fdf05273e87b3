package user

// Session is the authenticated user as the dashboard sees it. The
// override is a context layered on top of the identity; the identity
// itself never changes for the lifetime of a Session value.
type Session struct {
	userID        string
	email         string
	role          Role
	company       *OrgRef
	branchAddress *OrgRef
	override      *OrgUnit
}

func NewSession(userID, email string, role Role, company, branchAddress *OrgRef) (*Session, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	return &Session{
		userID:        userID,
		email:         email,
		role:          role,
		company:       cloneRef(company),
		branchAddress: cloneRef(branchAddress),
	}, nil
}

func (s *Session) UserID() string         { return s.userID }
func (s *Session) Email() string          { return s.email }
func (s *Session) Role() Role             { return s.role }
func (s *Session) Company() *OrgRef       { return cloneRef(s.company) }
func (s *Session) BranchAddress() *OrgRef { return cloneRef(s.branchAddress) }

func (s *Session) Override() *OrgUnit {
	if s.override == nil {
		return nil
	}
	u := *s.override
	return &u
}

func (s *Session) IsOverridden() bool {
	return s.override != nil
}

// BaseOrgUnit is the unit the user belongs to, derived from the branch
// association.
func (s *Session) BaseOrgUnit() *OrgUnit {
	if s.branchAddress == nil || s.branchAddress.ID == "" {
		return nil
	}
	return &OrgUnit{kind: OrgUnitBranch, id: s.branchAddress.ID, name: s.branchAddress.Name}
}

// OrgUnit is the effective unit: the override when present.
func (s *Session) OrgUnit() *OrgUnit {
	if s.override != nil {
		return s.Override()
	}
	return s.BaseOrgUnit()
}

func (s *Session) WithOverride(unit OrgUnit) *Session {
	next := s.copy()
	next.override = &unit
	return next
}

func (s *Session) WithoutOverride() *Session {
	next := s.copy()
	next.override = nil
	return next
}

func (s *Session) copy() *Session {
	c := *s
	c.company = cloneRef(s.company)
	c.branchAddress = cloneRef(s.branchAddress)
	if s.override != nil {
		u := *s.override
		c.override = &u
	}
	return &c
}

func cloneRef(r *OrgRef) *OrgRef {
	if r == nil {
		return nil
	}
	c := *r
	return &c
}
