// Package docconf assembles the settings read by the Sphinx documentation build.
//
// The settings are computed once from the project configuration and the repository's
// version file, then rendered as a conf.py fragment (or YAML/JSON) for the external
// generator. The package also carries the builder-inited hook that extracts the Doxygen
// XML consumed by breathe when the build runs on the hosted documentation service.
package docconf
