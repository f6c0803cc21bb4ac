package main

import (
	"github.com/mokiat/gomath/dprec"
	"github.com/mokiat/lacking/game/asset/dsl"
)

// The camera sits at (-12, 13, 15) and looks at the origin.
var cameraRotation = dprec.QuatProd(
	dprec.RotationQuat(dprec.Degrees(-38.66), dprec.BasisYVec3()),
	dprec.RotationQuat(dprec.Degrees(-34.09), dprec.BasisXVec3()),
)

var _ = func() any {
	sky := dsl.CreateSky(dsl.CreateColorSkyMaterial(
		dsl.RGB(0.2, 0.25, 0.3),
	))

	ambientLight := dsl.CreateAmbientLight()

	directionalLight := dsl.CreateDirectionalLight(
		dsl.SetEmitColor(dsl.RGB(1.5, 1.5, 1.5)),
		dsl.SetCastShadow(dsl.Const(true)),
	)

	return dsl.Save("prepass-scene.dat", dsl.CreateModel(
		dsl.AddNode(dsl.CreateNode("Sky",
			dsl.AddAttachment(sky),
		)),
		dsl.AddNode(dsl.CreateNode("AmbientLight",
			dsl.AddAttachment(ambientLight),
		)),
		dsl.AddNode(dsl.CreateNode("DirectionalLight",
			dsl.AddAttachment(directionalLight),
			dsl.SetRotation(dsl.Const(dprec.QuatProd(
				dprec.RotationQuat(dprec.Degrees(45), dprec.BasisYVec3()),
				dprec.RotationQuat(dprec.Degrees(-55), dprec.BasisXVec3()),
			))),
		)),
		dsl.AddNode(dsl.CreateNode("Camera",
			dsl.SetPosition(dsl.Const(dprec.NewVec3(-12.0, 13.0, 15.0))),
			dsl.SetRotation(dsl.Const(cameraRotation)),
		)),
	))
}()

var _ = dsl.Save("subject.dat",
	dsl.OpenGLTFModel("resources/raw/models/subject.glb"),
)
