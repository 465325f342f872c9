package dto

// ContactRequest carries the full field set for both create and update;
// updates replace every field except the identifier and the owner.
type ContactRequest struct {
	Firstname         string `json:"firstname"`
	Lastname          string `json:"lastname"`
	Fullname          string `json:"fullname"`
	Address           string `json:"address"`
	Email             string `json:"email"`
	MobilePhoneNumber string `json:"mobile_phone_number"`
}
