package handler

import "github.com/estately/realty-api/internal/core/domain"

func toAccountResponse(a *domain.Account) *accountResponse {
	return &accountResponse{
		ID:        a.ID,
		Username:  a.Username,
		Email:     a.Email,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Roles:     a.RoleNames(),
	}
}
