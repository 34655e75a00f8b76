package model

// Branding holds workspace-level presentation assets.
type Branding struct {
	Logo string
	Font string
}

// Terminology overrides the display names of the element taxonomy.
type Terminology struct {
	Person             string
	SoftwareSystem     string
	Container          string
	Component          string
	DeploymentNode     string
	InfrastructureNode string
	Relationship       string
}

// Workspace is the top-level build artifact handed to rendering and editing
// layers: one model, its views and styles, and workspace metadata.
type Workspace struct {
	Name        string
	Description string

	Model  Model
	Views  []View
	Styles Styles

	Branding    *Branding
	Terminology *Terminology

	// Configuration is the workspace-level key/value configuration block.
	Configuration map[string]string
	Properties    map[string]string
}

// ElementByID finds an element anywhere in the workspace's model.
func (w *Workspace) ElementByID(id string) (Element, bool) {
	return w.Model.ElementByID(id)
}

// ViewByKey finds a view by its unique user-facing key.
func (w *Workspace) ViewByKey(key string) (View, bool) {
	for _, v := range w.Views {
		if v.Key == key {
			return v, true
		}
	}
	return View{}, false
}
