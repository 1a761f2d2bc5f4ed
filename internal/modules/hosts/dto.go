package hosts

type UpdateHostRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	IsAdmin   *bool   `json:"is_admin"`
}
