package model

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Email        string
	Name         string
	AvatarURL    string
	Gender       string
	Role         Role
	Verified     bool
	PasswordHash []byte
}

// SessionContext carries the signed-in identity through handlers and
// usecases instead of ambient storage lookups.
type SessionContext struct {
	Email     string
	Role      Role
	Name      string
	AvatarURL string
}

func (s SessionContext) IsAdmin() bool {
	return s.Role == RoleAdmin
}

type Avatar struct {
	Filename string
	Content  []byte

	Email string
}

func (a Avatar) GetFilename() string {
	return a.Filename
}

func (a Avatar) GetContent() []byte {
	return a.Content
}

func (a Avatar) GetParent() string {
	return a.Email
}

func (a *Avatar) NewFromData(content []byte, name string) FileObject {
	return &Avatar{
		Content:  content,
		Filename: name,
	}
}
