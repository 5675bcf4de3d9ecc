// Package configure renders configure templates into header and source
// files. StripPrivate removes "/* begin private */" ... "/* end private */"
// regions from join files, Renderer turns #cmakedefine directives into
// #define or #undef lines and substitutes ${KEY} and @KEY@ placeholders,
// and Engine writes the stripped join files followed by the rendered
// template to an output file.
package configure
