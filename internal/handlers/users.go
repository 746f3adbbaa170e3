package handlers

import (
	"net/http"

	"github.com/ElGunner79/fish-stories/internal/models"
	"github.com/ElGunner79/fish-stories/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Surname  string `json:"surname" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=120"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Surname  *string `json:"surname"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6,max=120"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.Users.List()
	if err != nil {
		h.respondStoreError(c, err, "User not found")
		return
	}
	respondData(c, users)
}

func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.store.Users.Get(id)
	if err != nil {
		h.respondStoreError(c, err, "User not found")
		return
	}
	respondData(c, user)
}

func (h *Handler) GetUserInclude(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := h.store.Users.GetWithRelations(id)
	if err != nil {
		h.respondStoreError(c, err, "User not found")
		return
	}
	respondData(c, user)
}

func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("password hashing failed", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	user := models.User{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: hashed,
	}
	if err := h.store.Users.Create(&user); err != nil {
		h.respondStoreError(c, err, "User not found")
		return
	}

	respondData(c, user)
}

// Login checks credentials and issues a bearer token. A wrong email and a
// wrong password get the same answer so the endpoint does not reveal which
// accounts exist.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	user, err := h.store.Users.GetByEmail(req.Email)
	if err != nil || !utils.CheckPasswordHash(req.Password, user.Password) {
		respondMessage(c, http.StatusNotFound, "User not found")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		h.logger.Error("token issuance failed", "error", err)
		respondMessage(c, http.StatusInternalServerError, "Server error")
		return
	}

	respondData(c, gin.H{"token": token, "user": user})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Surname != nil {
		fields["surname"] = *req.Surname
	}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Password != nil {
		hashed, err := utils.HashPassword(*req.Password)
		if err != nil {
			h.logger.Error("password hashing failed", "error", err)
			respondMessage(c, http.StatusInternalServerError, "Server error")
			return
		}
		fields["password"] = hashed
	}

	affected, err := h.store.Users.Update(id, fields)
	if err != nil {
		h.respondStoreError(c, err, "User not found")
		return
	}
	if affected == 0 {
		respondMessage(c, http.StatusNotFound, "User not found")
		return
	}
	respondData(c, affected)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.store.Users.Delete(id)
	if err != nil {
		h.respondStoreError(c, err, "User not found")
		return
	}
	if deleted == 0 {
		respondMessage(c, http.StatusNotFound, "User not found")
		return
	}
	respondData(c, deleted)
}
