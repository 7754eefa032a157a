package apistrings

const (
	/// Basic User Related Strings
	UserNotFound              = "user or account does not exist"
	UserDetailsAlreadyCreated = "email or phone number already exists"
	IncorrectEmailPass        = "incorrect email or password"
	AdminOnly                 = "this action requires an administrator account"

	/// Core Functionality Error
	ServerError = "a server error occurred, please try again later"

	/// Wallet Related Strings
	UserNoWallet       = "user does not have a wallet created"
	BookingConflict    = "booking conflicted with a concurrent request, please retry"
	InvalidAmountInput = "check 'amount_kobo' key, invalid request"

	/// Shipment Related Strings
	InvalidBookingInput  = "invalid booking request, please check the submitted fields"
	InsufficientFunds    = "wallet balance cannot cover this shipment"
	ShipmentNotFound     = "shipment does not exist"
	InvalidTrackingInput = "tracking number format is not recognised"
	InvalidStatusInput   = "check 'status' key, invalid request"

	/// KYC Related Strings
	InvalidKYCInput = "invalid verification input, please check submitted information"
	UserNoKYC       = "user does not have verification information"
	KYCRequired     = "merchant account must be verified before booking"
)
