package catalog

// Seed configuration
const (
	// SeedFileName is the default catalog seed file
	SeedFileName = "catalog.yaml"
)

// Error messages - seed loading
const (
	ErrMsgReadSeedFileFailed = "failed to read catalog seed file: %w"
	ErrMsgParseSeedFailed    = "failed to parse catalog seed: %w"
	ErrMsgSeedNil            = "seed is nil"
	ErrMsgNoItemsDefined     = "no items defined"
)

// Error formats - seed validation
const (
	ErrFmtServerEmptySlug       = "%w: server at index %d has empty slug"
	ErrFmtDuplicateServerSlug   = "%w: duplicate server slug '%s'"
	ErrFmtItemMissingID         = "%w: item at index %d has no id"
	ErrFmtItemEmptyName         = "%w: item %d has empty name"
	ErrFmtDuplicateItemID       = "%w: duplicate item id %d"
	ErrFmtRecipeUnknownItem     = "%w: recipe at index %d produces unknown item %d"
	ErrFmtDuplicateRecipe       = "%w: item %d has more than one recipe"
	ErrFmtRecipeBadQuantity     = "%w: recipe for item %d has quantity %d"
	ErrFmtIngredientUnknownItem = "%w: recipe for item %d uses unknown item %d"
	ErrFmtIngredientBadQuantity = "%w: recipe for item %d uses %d of item %d"
)

// Error formats - sync and reload
const (
	ErrMsgUpsertServerFailed = "failed to upsert server '%s': %w"
	ErrMsgUpsertItemFailed   = "failed to upsert item %d: %w"
	ErrMsgUpsertRecipeFailed = "failed to upsert recipe for item %d: %w"
	ErrMsgListItemsFailed    = "failed to list items: %w"
	ErrMsgListRecipesFailed  = "failed to list recipes: %w"
)

// Log messages
const (
	LogMsgCatalogReloaded    = "Recipe catalog reloaded"
	LogMsgSeedSynced         = "Catalog seed synced"
	LogMsgNotifyFailed       = "Failed to send reload notification"
	LogMsgDanglingIngredient = "Recipe references unknown ingredient"
)

// ReloadJobName identifies the reload job in worker logs
const ReloadJobName = "catalog_reload"
