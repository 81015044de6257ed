// Package measures provides the dimensioned quantities of the library, such as [Length], [Time]
// and [Force], together with their units and their vector counterparts.
//
// Every quantity stores its magnitude in the SI unit of its dimension. Units only matter at the
// edges: constructors such as [NewLength] convert a magnitude expressed in a unit to SI, and
// accessors such as [Length.Kilometres] convert back.
//
//	d := measures.NewLength(3, measures.Kilometre)
//	t := measures.NewTime(15, measures.Minute)
//	v := measures.SpeedFromDistanceTime(d.AsDistance(), t)
//	fmt.Println(v.KilometresPerHour()) // roughly 12
//
// The quantity types are generated by quantitygen from quantities.yaml. Edit the table and run
// go generate rather than editing the zz_generated_*.go files.
package measures
