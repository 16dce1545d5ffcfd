// Package metadata models the authors, affiliations, and keywords of a paper
// and renders them into the LaTeX markup expected by each supported document
// class. The Manager deduplicates institutes and footnotes across authors so
// that shared affiliations get one index and repeated notes become
// back-references.
package metadata
