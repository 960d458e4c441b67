package apierrors

const (
	MsgInvalidPagination = "invalidPagination"

	MsgFailListTask       = "errorListTask"
	MsgInvalidTaskID      = "invalidTaskID"
	MsgInvalidTaskPayload = "invalidTaskPayload"
	MsgInvalidTaskQuery   = "invalidTaskQuery"
	MsgTaskNotFound       = "taskNotFound"
	MsgFailCreateTask     = "failCreateTask"
	MsgFailUpdateTask     = "failUpdateTask"
	MsgFailDeleteTask     = "failDeleteTask"

	MsgFailListUsers      = "failListUsers"
	MsgInvalidUserID      = "invalidUserID"
	MsgInvalidUserPayload = "invalidUserPayload"
	MsgUserNotFound       = "userNotFound"
	MsgDuplicateUserEmail = "duplicateUserEmail"
	MsgFailSaveUser       = "failSaveUser"
	MsgFailDeleteUser     = "failDeleteUser"

	MsgFailListShops      = "failListShops"
	MsgInvalidShopID      = "invalidShopID"
	MsgInvalidShopPayload = "invalidShopPayload"
	MsgShopNotFound       = "shopNotFound"
	MsgDuplicateShopName  = "duplicateShopName"
	MsgFailSaveShop       = "failSaveShop"
	MsgFailDeleteShop     = "failDeleteShop"

	MsgFailListChannels      = "failListChannels"
	MsgInvalidChannelID      = "invalidChannelID"
	MsgInvalidChannelPayload = "invalidChannelPayload"
	MsgChannelNotFound       = "channelNotFound"
	MsgDuplicateChannelName  = "duplicateChannelName"
	MsgFailSaveChannel       = "failSaveChannel"
	MsgFailDeleteChannel     = "failDeleteChannel"

	MsgInvalidDashboardQuery = "invalidDashboardQuery"
	MsgFailLoadDashboard     = "failLoadDashboard"
	MsgFailOpenStream        = "failOpenStream"
)
