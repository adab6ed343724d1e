// Package audio downloads pronunciation clips and plays them with whatever
// command line audio player the platform provides.
package audio
