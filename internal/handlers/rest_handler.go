package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"privateChat/internal/errs"
	"privateChat/internal/models"
	"privateChat/internal/msgs"
	"privateChat/internal/services"
)

type RestHandler struct {
	authService *services.AuthenticationService
	chatService *services.ChatService
	userService *services.UserService
}

func NewRestHandler(
	authService *services.AuthenticationService,
	chatService *services.ChatService,
	userService *services.UserService,
) *RestHandler {
	return &RestHandler{
		authService: authService,
		chatService: chatService,
		userService: userService,
	}
}

// Login godoc
// @Summary      Login user to account
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /login [post]
func (rh *RestHandler) Login(ctx *gin.Context) {
	var errors []error

	var loginData models.LoginRequestBody
	err := ctx.BindJSON(&loginData)
	if err != nil {
		log.Println("Error login data json binding:", err)
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	loginResponse, loginErrs := rh.authService.Login(&loginData)
	if len(loginErrs) > 0 {
		errors = append(errors, loginErrs...)
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

// Register godoc
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /register [post]
func (rh *RestHandler) Register(ctx *gin.Context) {
	var errors []error

	var user models.User
	err := ctx.BindJSON(&user)
	if err != nil {
		errors = append(errors, errs.ErrInvalidRequestBody)
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	_, registerErrs := rh.authService.Register(&user)
	if len(registerErrs) > 0 {
		errors = append(errors, registerErrs...)
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(errors), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  errors,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
	})
}

// SendMessage godoc
// @Summary      Send a private message
// @Description  Finds or creates the room between sender and receiver, persists the message and returns the refreshed room
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      403  {object}  models.Response
// @Router       /chat/messages [post]
func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	senderID := ctx.GetUint("user_id")

	var body models.SendMessageRequestBody
	if err := ctx.BindJSON(&body); err != nil {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidRequestBody},
		})
		return
	}

	room, sendErrs := rh.chatService.SendMessage(senderID, &body)
	if len(sendErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(sendErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  sendErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    room,
	})
}

// GetRooms godoc
// @Summary      List the authenticated user's rooms
// @Tags         chat
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  models.Response
// @Router       /chat/rooms [get]
func (rh *RestHandler) GetRooms(ctx *gin.Context) {
	userID := ctx.GetUint("user_id")

	rooms, roomErrs := rh.chatService.GetRooms(userID)
	if len(roomErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(roomErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  roomErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    rooms,
	})
}

// GetRoom godoc
// @Summary      Get a single room with its messages
// @Description  Marks the requester's incoming unread messages as read
// @Tags         chat
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        id             path    int     true  "Room ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /chat/rooms/{id} [get]
func (rh *RestHandler) GetRoom(ctx *gin.Context) {
	userID := ctx.GetUint("user_id")

	roomID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || roomID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	room, roomErrs := rh.chatService.GetRoom(uint(roomID), userID)
	if len(roomErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(roomErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  roomErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    room,
	})
}

// LeaveRoom godoc
// @Summary      Leave a room
// @Description  Hides the room and its messages for the caller; once both participants have left, messages are purged and the room is closed
// @Tags         chat
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        id             path    int     true  "Room ID"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /chat/rooms/{id} [delete]
func (rh *RestHandler) LeaveRoom(ctx *gin.Context) {
	userID := ctx.GetUint("user_id")

	roomID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || roomID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	leaveErrs := rh.chatService.LeaveRoom(userID, uint(roomID))
	if len(leaveErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(leaveErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  leaveErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgRoomLeft,
	})
}

func (rh *RestHandler) GetAllUsersWithPagination(ctx *gin.Context) {
	page := ctx.Query("page")
	size := ctx.Query("size")

	pageInt, err := strconv.Atoi(page)
	if err != nil || pageInt < 1 {
		pageInt = 1
	}

	sizeInt, err := strconv.Atoi(size)
	if err != nil || sizeInt < 1 {
		sizeInt = 10
	}

	response, userErrs := rh.authService.GetAllUsersWithPagination(pageInt, sizeInt)
	if len(userErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(userErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  userErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    response,
	})
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	id := ctx.Param("id")

	idInt, err := strconv.Atoi(id)
	if err != nil || idInt < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	user, userErrs := rh.authService.GetSingleUser(idInt)
	if len(userErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(userErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  userErrs,
		})
		return
	}
	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user,
	})
}

// BlockUser godoc
// @Summary      Block a user
// @Tags         users
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        id             path    int     true  "User ID to block"
// @Success      200  {object}  models.Response
// @Failure      400  {object}  models.Response
// @Router       /users/{id}/block [post]
func (rh *RestHandler) BlockUser(ctx *gin.Context) {
	blockerID := ctx.GetUint("user_id")

	blockedID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || blockedID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	blockErrs := rh.userService.BlockUser(blockerID, uint(blockedID))
	if len(blockErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(blockErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  blockErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserBlocked,
	})
}

// UnblockUser godoc
// @Summary      Unblock a user
// @Tags         users
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Param        id             path    int     true  "User ID to unblock"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /users/{id}/block [delete]
func (rh *RestHandler) UnblockUser(ctx *gin.Context) {
	blockerID := ctx.GetUint("user_id")

	blockedID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil || blockedID < 1 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  []error{errs.ErrInvalidParams},
		})
		return
	}

	unblockErrs := rh.userService.UnblockUser(blockerID, uint(blockedID))
	if len(unblockErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(unblockErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  unblockErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgUserUnblocked,
	})
}

// GetProfile godoc
// @Summary      Get the authenticated user's profile
// @Tags         users
// @Produce      json
// @Param        Authorization  header  string  true  "Bearer token"
// @Success      200  {object}  models.Response
// @Failure      404  {object}  models.Response
// @Router       /profile [get]
func (rh *RestHandler) GetProfile(ctx *gin.Context) {
	userID := ctx.GetUint("user_id")

	profile, profileErrs := rh.userService.GetProfile(userID)
	if len(profileErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(profileErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  profileErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    profile,
	})
}

func (rh *RestHandler) GetBlockedUsers(ctx *gin.Context) {
	userID := ctx.GetUint("user_id")

	blocked, blockErrs := rh.userService.GetBlockedUsers(userID)
	if len(blockErrs) > 0 {
		ctx.AbortWithStatusJSON(errs.HttpStatusOf(blockErrs), models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  blockErrs,
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    blocked,
	})
}
