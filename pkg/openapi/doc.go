// Package openapi exposes the public contracts for loading OpenAPI documents
// and reading wizard step definitions from them. Implementations live under
// internal/openapi to keep kin-openapi dependencies hidden from consumers.
//
// An operation declares its steps with the `x-wizard-steps` extension and
// assigns request body properties to a step with `x-wizard-step`:
//
//	post:
//	  operationId: createListing
//	  x-wizard-steps:
//	    - id: property
//	      titleKey: wizard.steps.property
//	    - id: pricing
//	  requestBody:
//	    content:
//	      application/json:
//	        schema:
//	          required: [resourceType, price]
//	          properties:
//	            resourceType: { type: string, x-wizard-step: property }
//	            price: { type: number, x-wizard-step: pricing }
package openapi
