// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ioc

// ServiceLocator is the read side of the container: what consumers use to
// resolve instances without being able to register new ones.
type ServiceLocator interface {
	Resolve(instance any) error
	ResolveNamed(name string, instance any) error
}
