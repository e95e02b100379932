// Package gen renders entity metadata into source artifacts: one file
// per requested feature, returned as a path-to-content map.
// Writing the files is the caller's concern; generation itself performs
// no I/O.
package gen

import (
	"github.com/syssam/strata/metadata"
)

// Feature is a single switchable generation concern. A feature binds an
// artifact layer, a class-name suffix and a template; modifier features
// carry no template of their own and only change how other features
// render.
type Feature struct {
	// Name is the feature name as it appears in configuration.
	Name string
	// Description documents what the feature emits.
	Description string
	// Layer is the artifact layer the feature renders into.
	Layer metadata.Layer
	// Suffix is appended to the entity class name for the artifact.
	Suffix string
	// resource marks features that render a language-independent
	// resource file instead of a source class.
	resource bool
	// ext is the resource file extension, when resource is set.
	ext string
	// test marks features rendered under the test root.
	test bool
	// modifier marks features that emit no file of their own.
	modifier bool
}

var (
	// FeatureEntity renders the entity class itself. It is not a
	// configuration switch: callers request it explicitly through
	// GenerateFeatures.
	FeatureEntity = Feature{
		Name:        "entity",
		Description: "Persistent entity class with column and relationship mappings",
		Layer:       metadata.LayerEntity,
	}

	// FeatureController renders the REST controller for the entity.
	FeatureController = Feature{
		Name:        "controller",
		Description: "REST controller exposing CRUD endpoints for the entity",
		Layer:       metadata.LayerController,
		Suffix:      "Controller",
	}

	// FeatureService renders the transactional service layer.
	FeatureService = Feature{
		Name:        "service",
		Description: "Transactional service wrapping the entity repository",
		Layer:       metadata.LayerService,
		Suffix:      "Service",
	}

	// FeatureRepository renders the data-access repository.
	FeatureRepository = Feature{
		Name:        "repository",
		Description: "Data-access repository for the entity",
		Layer:       metadata.LayerRepository,
		Suffix:      "Repository",
	}

	// FeatureDTO renders the transfer object mirroring the entity.
	FeatureDTO = Feature{
		Name:        "dto",
		Description: "Transfer object mirroring the entity fields",
		Layer:       metadata.LayerDTO,
		Suffix:      "DTO",
	}

	// FeatureMapper renders the entity/DTO mapper.
	FeatureMapper = Feature{
		Name:        "mapper",
		Description: "Mapper converting between the entity and its transfer object",
		Layer:       metadata.LayerMapper,
		Suffix:      "Mapper",
	}

	// FeatureTests renders a service test class under the test root.
	FeatureTests = Feature{
		Name:        "tests",
		Description: "Unit test skeleton for the entity service",
		Layer:       metadata.LayerService,
		Suffix:      "ServiceTest",
		test:        true,
	}

	// FeatureSwagger renders per-entity API documentation configuration.
	FeatureSwagger = Feature{
		Name:        "swagger",
		Description: "API documentation configuration for the entity endpoints",
		Layer:       metadata.LayerController,
		Suffix:      "ApiDocumentation",
	}

	// FeatureOpenAPI renders an OpenAPI document for the entity endpoints.
	FeatureOpenAPI = Feature{
		Name:        "openapi",
		Description: "OpenAPI contract describing the entity endpoints",
		resource:    true,
		ext:         ".yaml",
	}

	// FeatureSecurity renders per-entity endpoint access rules.
	FeatureSecurity = Feature{
		Name:        "security",
		Description: "Access rules securing the entity endpoints",
		Layer:       metadata.LayerController,
		Suffix:      "SecurityRules",
	}

	// FeatureGraphQL renders the GraphQL schema for the entity.
	FeatureGraphQL = Feature{
		Name:        "graphql",
		Description: "GraphQL schema exposing the entity",
		resource:    true,
		ext:         ".graphqls",
	}

	// FeatureCustomQueryMethods augments the repository with derived
	// finder methods for every plain column. It emits no file of its
	// own.
	FeatureCustomQueryMethods = Feature{
		Name:        "customQueryMethods",
		Description: "Derived finder methods on the repository, one per column",
		modifier:    true,
	}
)

// AllFeatures holds the switchable features in rendering order.
var AllFeatures = []Feature{
	FeatureController,
	FeatureService,
	FeatureRepository,
	FeatureDTO,
	FeatureMapper,
	FeatureTests,
	FeatureSwagger,
	FeatureOpenAPI,
	FeatureSecurity,
	FeatureGraphQL,
	FeatureCustomQueryMethods,
}
