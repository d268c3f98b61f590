package domain

// RecipeFilter — payload для подключения recipe к проекту.
//
// Фильтр выбирает recipe из множества recipes, видимых текущему аккаунту,
// по владельцу, имени и тегу (версии).
//
// Schema: https://api.pollination.cloud/redoc#operation/create_project_recipe_filter
type RecipeFilter struct {
	// Owner — аккаунт, опубликовавший recipe (например, "ladybug-tools").
	Owner string `json:"owner"`

	// Name — имя recipe (например, "daylight-factor").
	Name string `json:"name"`

	// Tag — версия recipe (например, "0.5.6").
	Tag string `json:"tag"`
}
