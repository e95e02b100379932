package gen

import (
	"github.com/syssam/strata/metadata"
	"github.com/syssam/strata/schema/sqltype"
)

// TemplateID identifies a template: the feature it renders and the
// language variant. Resource features use the zero Lang.
type TemplateID struct {
	Feature string
	Lang    sqltype.Lang
}

// Renderer resolves template identities and binds them against a view.
// The default implementation is gen/templates.Registry.
type Renderer interface {
	// Render renders the identified template. An unresolvable identity
	// fails with TemplateNotFoundError.
	Render(id TemplateID, view *View) (string, error)
}

// View is the model a template binds against. It is derived purely from
// the entity metadata and the feature configuration of one generation
// request.
type View struct {
	// Entity is the entity being rendered.
	Entity *metadata.EntityMetadata
	// Config is the feature configuration of the request. Templates
	// consult it for cross-feature concerns (a secured controller, a
	// repository with derived finders).
	Config FeatureConfig
	// Lang is the target language.
	Lang sqltype.Lang
	// Package is the package of the artifact being rendered.
	Package string
	// TypeName is the artifact class name (entity class name plus the
	// feature suffix).
	TypeName string
}

// EntityType returns the entity class name.
func (v *View) EntityType() string {
	return v.Entity.ClassName
}

// EntityPackage returns the entity layer package.
func (v *View) EntityPackage() string {
	return v.Entity.PackageFor(metadata.LayerEntity)
}

// DTOType returns the transfer-object class name.
func (v *View) DTOType() string {
	return v.Entity.ClassName + FeatureDTO.Suffix
}

// DTOPackage returns the transfer-object layer package.
func (v *View) DTOPackage() string {
	return v.Entity.PackageFor(metadata.LayerDTO)
}

// RepositoryType returns the repository class name.
func (v *View) RepositoryType() string {
	return v.Entity.ClassName + FeatureRepository.Suffix
}

// RepositoryPackage returns the repository layer package.
func (v *View) RepositoryPackage() string {
	return v.Entity.PackageFor(metadata.LayerRepository)
}

// ServiceType returns the service class name.
func (v *View) ServiceType() string {
	return v.Entity.ClassName + FeatureService.Suffix
}

// ServicePackage returns the service layer package.
func (v *View) ServicePackage() string {
	return v.Entity.PackageFor(metadata.LayerService)
}

// MapperType returns the mapper class name.
func (v *View) MapperType() string {
	return v.Entity.ClassName + FeatureMapper.Suffix
}

// MapperPackage returns the mapper layer package.
func (v *View) MapperPackage() string {
	return v.Entity.PackageFor(metadata.LayerMapper)
}
