// Package camera ties a device to its feature map and acquisition session.
//
// Devices come from a Discoverer. A Registry holds the cameras found by the
// last Update; there is no global camera list.
//
//	reg, _ := camera.NewRegistry(discoverer, camera.DefaultOptions())
//	if _, err := reg.Update(ctx); err != nil {
//	    return err
//	}
//	cam, err := reg.Get("SIM-0001")
//	if err := cam.Initialize(ctx); err != nil {
//	    return err
//	}
//	defer cam.Close()
//
//	err = cam.Acquire(ctx, func(s *acquisition.Session) error {
//	    frame, err := s.GetFrame(time.Second)
//	    ...
//	})
//
// Configurations are stored per device under the user configuration
// directory, see Camera.DefaultConfigPath.
package camera
