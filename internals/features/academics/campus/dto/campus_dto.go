package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"eduportal_backend/internals/features/academics/campus/model"
)

type CampusCreateDTO struct {
	CampusName    string `json:"campus_name"    validate:"required,min=2,max=150"`
	CampusAddress string `json:"campus_address" validate:"omitempty,max=255"`
}

type CampusUpdateDTO struct {
	CampusName    *string `json:"campus_name,omitempty"    validate:"omitempty,min=2,max=150"`
	CampusAddress *string `json:"campus_address,omitempty" validate:"omitempty,max=255"`
}

type CampusResponseDTO struct {
	CampusID        uuid.UUID `json:"campus_id"`
	CampusName      string    `json:"campus_name"`
	CampusAddress   string    `json:"campus_address"`
	CampusCreatedAt time.Time `json:"campus_created_at"`
}

func (p *CampusCreateDTO) Normalize() {
	p.CampusName = strings.TrimSpace(p.CampusName)
	p.CampusAddress = strings.TrimSpace(p.CampusAddress)
}

func (p *CampusCreateDTO) ToModel() model.CampusModel {
	return model.CampusModel{
		CampusName:    p.CampusName,
		CampusAddress: p.CampusAddress,
	}
}

func (u *CampusUpdateDTO) ApplyUpdates(ent *model.CampusModel) {
	if u.CampusName != nil {
		ent.CampusName = strings.TrimSpace(*u.CampusName)
	}
	if u.CampusAddress != nil {
		ent.CampusAddress = strings.TrimSpace(*u.CampusAddress)
	}
}

func FromModel(ent model.CampusModel) CampusResponseDTO {
	return CampusResponseDTO{
		CampusID:        ent.CampusID,
		CampusName:      ent.CampusName,
		CampusAddress:   ent.CampusAddress,
		CampusCreatedAt: ent.CampusCreatedAt,
	}
}

func FromModels(ents []model.CampusModel) []CampusResponseDTO {
	out := make([]CampusResponseDTO, 0, len(ents))
	for _, e := range ents {
		out = append(out, FromModel(e))
	}
	return out
}
