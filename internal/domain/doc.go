// Package domain contains the core entities of the news API (topics,
// users, articles, and comments) together with the domain errors shared
// across the delivery and storage layers. It is independent of any specific
// infrastructure or delivery mechanism.
package domain
