/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pcl composes documents as PCL 5 printer streams. Vector graphics and text are drawn
// with embedded HP-GL/2, fonts are downloaded as TrueType soft fonts and images are sent as
// uncompressed RGB raster graphics.
//
// Example:
//
//	doc, err := pcl.New(f, &pcl.Options{Size: pcl.PageSizeA4})
//	if err != nil {
//		return err
//	}
//	doc.Text("Hello world", 72, 72, nil)
//	v := doc.Vector()
//	v.Rect(72, 120, 200, 100)
//	v.Stroke()
//	return doc.End()
package pcl
