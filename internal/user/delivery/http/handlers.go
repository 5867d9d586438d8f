package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"notes-api/internal/user"
	"notes-api/pkg/response"
)

// Signup godoc
// @Summary     Register a user
// @Description Creates a new account. The user name must be unique.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body signupReq true "Account data"
// @Success     200  {object} userResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - name already exists"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /signup [POST]
func (h *handler) Signup(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSignupReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Signup(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Signup: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSignupResp(output))
}

// Login godoc
// @Summary     Log in
// @Description Checks a user name and password. No token or session is issued.
// @Tags        Users
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Credentials"
// @Success     200  {object} response.MessageResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     401  {object} response.WarningResp "Wrong username or password"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if _, err := h.uc.Login(ctx, req.toInput()); err != nil {
		if errors.Is(err, user.ErrWrongCredentials) {
			h.l.Infof(ctx, "login rejected for %q", req.Name)
			response.Warning(c, http.StatusUnauthorized, WrongCredentialsWarning)
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Message(c, LoginSuccessMessage)
}

// List godoc
// @Summary     List users
// @Description Returns every account ordered by id.
// @Tags        Users
// @Produce     json
// @Success     200 {array}  userResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /users [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get user detail
// @Description Returns a single account by its id.
// @Tags        Users
// @Produce     json
// @Param       id path int true "User ID"
// @Success     200 {object} userResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /users/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Delete godoc
// @Summary     Delete a user
// @Description Permanently removes an account. Items it owns are kept.
// @Tags        Users
// @Produce     plain
// @Param       id path int true "User ID"
// @Success     200 {string} string "User account was deleted"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - user still owns items"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /users/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Text(c, DeletedMessage)
}
