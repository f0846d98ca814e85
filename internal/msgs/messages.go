package msgs

const (
	MsgOperationSuccessful     = "operation successful"
	MsgOperationFailed         = "operation failed"
	MsgUserCreatedSuccessfully = "user created successfully"
	MsgYouMustLoginFirst       = "you must login first"
	MsgUserBlocked             = "user blocked"
	MsgUserUnblocked           = "user unblocked"
	MsgRoomLeft                = "room left"
)
