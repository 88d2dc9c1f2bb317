package models

// User is an account served by the resource service.
//
// As with [Post], the resource client passes user documents through as
// [Payload] values; this struct is the typed view.
type User struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id" yaml:"id"`

	// Name is the display name of the user.
	Name string `json:"name" yaml:"name"`

	// Username is the short handle of the user.
	Username string `json:"username" yaml:"username"`

	// Email is the contact address of the user.
	Email string `json:"email" yaml:"email"`

	Address Address `json:"address" yaml:"address"`

	Phone   string  `json:"phone" yaml:"phone"`
	Website string  `json:"website" yaml:"website"`
	Company Company `json:"company" yaml:"company"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Address is the postal address of a [User].
type Address struct {
	Street  string `json:"street" yaml:"street"`
	Suite   string `json:"suite" yaml:"suite"`
	City    string `json:"city" yaml:"city"`
	Zipcode string `json:"zipcode" yaml:"zipcode"`
	Geo     Geo    `json:"geo" yaml:"geo"`
}

// Geo holds coordinates as the service reports them (decimal strings).
type Geo struct {
	Lat string `json:"lat" yaml:"lat"`
	Lng string `json:"lng" yaml:"lng"`
}

// Company is the employer of a [User].
type Company struct {
	Name        string `json:"name" yaml:"name"`
	CatchPhrase string `json:"catchPhrase" yaml:"catchPhrase"`
	BS          string `json:"bs" yaml:"bs"`
}
