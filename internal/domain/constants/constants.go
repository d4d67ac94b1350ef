package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Persistent store keys. Values are JSON-encoded strings.
const (
	StorageKeyCartItems        = "cartItems"
	StorageKeySelectedShop     = "selectedShop"
	StorageKeyCartSidebarState = "cartSidebarState"
	StorageKeyToken            = "token"
)

// Sync bus event names
const (
	EventCartUpdated = "cartUpdated"
	EventCartToggle  = "cartToggle"
)

// Live notification push events
const (
	PushEventOrderUpdate = "orderUpdate"
	PushEventOrderCreate = "orderCreate"
)

// Storage providers
const (
	StorageProviderMemory   = "memory"
	StorageProviderBlob     = "blob"
	StorageProviderSQLite   = "sqlite"
	StorageProviderRedis    = "redis"
	StorageProviderPostgres = "postgres"
)

// Push transport providers
const (
	PushProviderWebSocket = "websocket"
	PushProviderRedis     = "redis"
	PushProviderGoogle    = "google"
)

// Redirect targets used by page gating
const (
	PathHome          = "/"
	PathShopDashboard = "/shopdashboard"
)

// HeaderXSessionID carries the storefront session id for non-browser clients.
const HeaderXSessionID = "X-Session-Id"
