package dto

type SkillRequest struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}
